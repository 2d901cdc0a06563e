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

func repl(args []string) error {
	fs := flag.NewFlagSet("repl", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: qkangaroo repl

Read expressions from standard input and print results.
Type quit or press Ctrl-D to exit.
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	ev := dsl.NewEvaluator(telescope.DefaultOptions())
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
		case line == "quit" || line == "exit":
			return nil
		default:
			out, err := ev.Run(line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			} else {
				fmt.Println(out)
			}
		}
		fmt.Print("> ")
	}
	fmt.Println()
	return scanner.Err()
}
