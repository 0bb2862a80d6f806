package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/mrtz/pocketbook"
	"github.com/mrtz/pocketbook/renderer"
)

type txCmd struct {
	period string
	all    bool
	head   int
	tail   int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions in the book" }
func (*txCmd) Usage() string {
	return `pbk tx [-p <period>] [-all] [-head <n>] [-tail <n>]

  Lists transactions, newest first. By default only active ones; -all also
  shows reversed transactions still in their grace period.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "", "Restrict to a period (daily, weekly, monthly, yearly)")
	f.BoolVar(&p.all, "all", false, "Include retired transactions")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	var transactions []pocketbook.Transaction
	if p.all {
		for tx := range book.Ledger().Transactions() {
			transactions = append(transactions, tx)
		}
	} else {
		transactions = pocketbook.ActiveTransactions(book.Ledger())
	}

	if p.period != "" {
		period, err := pocketbook.ParsePeriod(p.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
			return subcommands.ExitUsageError
		}
		now := time.Now()
		kept := transactions[:0]
		for _, tx := range transactions {
			if period.Contains(now, tx.Date) {
				kept = append(kept, tx)
			}
		}
		transactions = kept
	}

	if p.head > 0 && p.head < len(transactions) {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && p.tail < len(transactions) {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}
