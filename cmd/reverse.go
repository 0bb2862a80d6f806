package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/mrtz/pocketbook"
	"github.com/mrtz/pocketbook/renderer"
)

type reverseCmd struct {
	id  string
	yes bool
}

func (*reverseCmd) Name() string     { return "reverse" }
func (*reverseCmd) Synopsis() string { return "undo a transaction by reversing it" }
func (*reverseCmd) Usage() string {
	return `pbk reverse -id <transaction-id> [-y]

  Retires the transaction and records a compensating transaction of the
  opposite type. The pair stays visible for 48 hours, then it is purged.
`
}

func (c *reverseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to reverse")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *reverseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	confirm := c.confirmer()
	reversal, err := book.Reverse(c.id, confirm, time.Now())
	if errors.Is(err, pocketbook.ErrCancelled) {
		fmt.Println("Left unchanged.")
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s\nBoth sides will be purged after %s.\n",
		renderer.Transaction(reversal), pocketbook.GracePeriod)
	return subcommands.ExitSuccess
}

// confirmer shows the transaction about to be reversed and asks on stdin,
// unless -y was given.
func (c *reverseCmd) confirmer() pocketbook.Confirmer {
	if c.yes {
		return nil
	}
	return func(tx pocketbook.Transaction) bool {
		fmt.Printf("About to reverse %s\n", renderer.Transaction(tx))
		fmt.Print("Proceed? [y/N] ")
		answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
}
