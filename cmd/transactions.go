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

// recordTransaction validates the shared flags, records the transaction and
// persists the book.
func recordTransaction(typ pocketbook.TxType, amount, tag, description string, f *flag.FlagSet) subcommands.ExitStatus {
	if amount == "" || tag == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	value, err := pocketbook.ParseAmount(amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	tx, err := book.Record(typ, value, tag, description, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s\n  id: %s\n", renderer.Transaction(tx), tx.ID)
	return subcommands.ExitSuccess
}

// --- Income Command ---

type incomeCmd struct {
	amount      string
	tag         string
	description string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record money coming in" }
func (*incomeCmd) Usage() string {
	return `pbk income -a <amount> -t <tag> [-d <description>]

  Records an income transaction dated now.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount, a positive number")
	f.StringVar(&c.tag, "t", "", "Category tag, e.g. salary")
	f.StringVar(&c.description, "d", "", "An optional note for the transaction")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(pocketbook.Income, c.amount, c.tag, c.description, f)
}

// --- Expense Command ---

type expenseCmd struct {
	amount      string
	tag         string
	description string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record money going out" }
func (*expenseCmd) Usage() string {
	return `pbk expense -a <amount> -t <tag> [-d <description>]

  Records an expense transaction dated now.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount, a positive number")
	f.StringVar(&c.tag, "t", "", "Category tag, e.g. rent")
	f.StringVar(&c.description, "d", "", "An optional note for the transaction")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(pocketbook.Expense, c.amount, c.tag, c.description, f)
}
