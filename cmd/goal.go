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

// --- Goal Command ---

type goalCmd struct {
	name    string
	target  string
	monthly string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "set a savings goal" }
func (*goalCmd) Usage() string {
	return `pbk goal -n <name> -target <amount> -monthly <amount>

  Sets a named savings goal with its monthly saving pace. Goal names are
  unique, ignoring case.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Goal name, e.g. vacation")
	f.StringVar(&c.target, "target", "", "Target amount to save")
	f.StringVar(&c.monthly, "monthly", "", "Monthly saving pace")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.target == "" || c.monthly == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	target, err := pocketbook.ParseAmount(c.target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing target: %v\n", err)
		return subcommands.ExitUsageError
	}
	monthly, err := pocketbook.ParseAmount(c.monthly)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing monthly target: %v\n", err)
		return subcommands.ExitUsageError
	}

	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	goal, err := book.SetGoal(c.name, target, monthly, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Goal %q set, target %s\n", goal.Name, goal.Target)
	return subcommands.ExitSuccess
}

// --- Goals Command ---

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list goals and their progress" }
func (*goalsCmd) Usage() string {
	return `pbk goals

  Lists every goal with the amount saved so far and the progress towards
  the target.
`
}

func (*goalsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	printMarkdown(renderer.Goals(pocketbook.AllProgress(book.Ledger())))
	return subcommands.ExitSuccess
}

// --- Contribute Command ---

type contributeCmd struct {
	name   string
	amount string
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "put money aside for a goal" }
func (*contributeCmd) Usage() string {
	return `pbk contribute -n <name> -a <amount>

  Records a contribution to an existing goal. A contribution is an ordinary
  expense tagged with the goal's name.
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Goal name")
	f.StringVar(&c.amount, "a", "", "Amount to put aside")
}

func (c *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || c.amount == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	amount, err := pocketbook.ParseAmount(c.amount)
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

	tx, err := book.Contribute(c.name, amount, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	goal, _ := book.Ledger().Goal(c.name)
	progress := pocketbook.Progress(book.Ledger(), goal)
	fmt.Printf("Recorded %s\n%q is now at %s of %s (%s)\n",
		renderer.Transaction(tx), goal.Name, progress.Saved, goal.Target, progress.Percent)
	return subcommands.ExitSuccess
}
