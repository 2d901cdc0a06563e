package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "run":
		if err := run(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "repl":
		if err := repl(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "prove":
		if err := prove(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "identities":
		if err := identities(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("qkangaroo version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`qkangaroo - q-series summation and identity proving tool

Usage:
  qkangaroo <command> [options]

Commands:
  run         Evaluate expressions from a script file
  repl        Interactive expression prompt
  prove       Prove a nonterminating q-hypergeometric identity
  identities  List proved identities in a database
  help        Show this help message
  version     Show version information

Examples:
  # Evaluate a script
  qkangaroo run session.qk

  # Find a recurrence for the q-Vandermonde sum
  echo 'zeilberger(phi([q^-n, q^2], [q^3], q^(n+1)), 5, 1/3)' | qkangaroo repl

  # Prove the q-Gauss identity and record it
  qkangaroo prove -upper '[q^-n, q^2]' -lower '[q^3]' -arg 'q^(n+1)' \
    -rhs-num q -rhs-den q^3 -q 1/2 -name q-gauss -db identities.db

For command-specific help, run:
  qkangaroo <command> --help`)
}
