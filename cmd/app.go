// Package cmd implements the CLI application to manage a pocketbook.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/mrtz/pocketbook"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&incomeCmd{}, "transactions")
	c.Register(&expenseCmd{}, "transactions")
	c.Register(&reverseCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&goalCmd{}, "goals")
	c.Register(&goalsCmd{}, "goals")
	c.Register(&contributeCmd{}, "goals")

	c.Register(&dashboardCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(newPresetCmd(pocketbook.Daily), "reports")
	c.Register(newPresetCmd(pocketbook.Weekly), "reports")
	c.Register(newPresetCmd(pocketbook.Monthly), "reports")
	c.Register(newPresetCmd(pocketbook.Yearly), "reports")
	c.Register(&insightsCmd{}, "reports")

	c.Register(&exportCmd{}, "book")
	c.Register(&importCmd{}, "book")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// Environment variables mirroring the global flags.
const (
	EnvFile     = "POCKETBOOK_FILE"
	EnvBackend  = "POCKETBOOK_BACKEND"
	EnvCurrency = "POCKETBOOK_CURRENCY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("file", envOr(EnvFile, "pocketbook.json"), "Path to the book file")
var backend = flag.String("backend", envOr(EnvBackend, pocketbook.FileBackend), "Storage backend (file, sqlite)")

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openBook opens the store selected by the global flags and loads the book
// from it, running the retention sweep. The returned close function must be
// called once the command is done.
func openBook() (*pocketbook.Book, func() error, error) {
	store, closeStore, err := pocketbook.OpenStore(*backend, *bookFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open book %q: %w", *bookFile, err)
	}
	return pocketbook.Open(store, time.Now()), closeStore, nil
}
