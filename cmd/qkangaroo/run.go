package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gerardgarvan/qKangaroo-sub000/dsl"
	"github.com/gerardgarvan/qKangaroo-sub000/telescope"
)

func run(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	maxOrder := fs.Int("max-order", telescope.DefaultOptions().MaxOrder, "recurrence order search bound")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: qkangaroo run <script>

Evaluate expressions from a script file, one per line.
Blank lines and lines starting with # are skipped.

Examples:
  qkangaroo run session.qk
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("script file required")
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer f.Close()

	opts := telescope.DefaultOptions()
	opts.MaxOrder = *maxOrder
	ev := dsl.NewEvaluator(opts)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out, err := ev.Run(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		fmt.Printf("%s\n  %s\n", line, out)
	}
	return scanner.Err()
}
