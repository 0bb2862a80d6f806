package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mrtz/pocketbook"
)

// --- Export Command ---

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the whole book as JSONL" }
func (*exportCmd) Usage() string {
	return `pbk export [-o <file>]

  Writes the book to stdout (or a file) in the import/export format:
  one record per line, goals first.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write to this file instead of stdout")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	w := os.Stdout
	if c.output != "" {
		if w, err = os.Create(c.output); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer w.Close()
	}

	if err := pocketbook.Export(w, book.Ledger()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// --- Import Command ---

type importCmd struct {
	statement bool
	rows      string
	amount    string
	date      string
	tag       string
	desc      string
	txType    string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "merge an export or a bank statement into the book" }
func (*importCmd) Usage() string {
	return `pbk import [<file>]
pbk import -statement [<file>] [-rows <path>] [-amount <path>] [-date <path>] [-tag <path>] [-desc <path>] [-type <path>]

  Without -statement, merges an export stream (as written by 'pbk export')
  into the book; records already present are skipped.

  With -statement, reads a bank statement in JSON and records one
  transaction per row; JSONPath expressions map the statement's shape.
  Reads stdin when no file is given.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.statement, "statement", false, "Treat the input as a bank statement")
	f.StringVar(&c.rows, "rows", "$", "JSONPath to the array of rows")
	f.StringVar(&c.amount, "amount", "$.amount", "JSONPath to the amount of a row")
	f.StringVar(&c.date, "date", "$.date", "JSONPath to the date of a row")
	f.StringVar(&c.tag, "tag", "$.category", "JSONPath to the category of a row")
	f.StringVar(&c.desc, "desc", "$.description", "JSONPath to the description of a row")
	f.StringVar(&c.txType, "type", "", "JSONPath to the income/expense type of a row; the amount's sign decides when empty")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r := os.Stdin
	if f.NArg() > 0 {
		var err error
		if r, err = os.Open(f.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
			return subcommands.ExitFailure
		}
		defer r.Close()
	}

	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	if c.statement {
		mapping := pocketbook.StatementMapping{
			Rows:        c.rows,
			Amount:      c.amount,
			Date:        c.date,
			Tag:         c.tag,
			Description: c.desc,
			Type:        c.txType,
		}
		imported, err := book.ImportStatement(r, mapping)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Imported %d transactions from the statement\n", len(imported))
		return subcommands.ExitSuccess
	}

	added, err := book.Import(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d new records\n", added)
	return subcommands.ExitSuccess
}
