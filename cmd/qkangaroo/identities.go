package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gerardgarvan/qKangaroo-sub000/identity"
)

func identities(args []string) error {
	fs := flag.NewFlagSet("identities", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: qkangaroo identities <database>

List proved identities recorded in a sqlite database.

Examples:
  qkangaroo identities identities.db
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("database file required")
	}

	store, err := identity.Open(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	records, err := store.List()
	if err != nil {
		return fmt.Errorf("list identities: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("No identities recorded.")
		return nil
	}

	for _, rec := range records {
		fmt.Printf("%s  %s\n", rec.ID, rec.Name)
		fmt.Printf("  q = %s, n_test = %d, order %d, proved %s\n",
			rec.Q, rec.NTest, rec.Order, rec.ProvedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
