package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/mrtz/pocketbook/renderer"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the book at a glance" }
func (*dashboardCmd) Usage() string {
	return `pbk dashboard

  Displays the overall balance, this month's income and expenses by
  category, goal progress and the derived insights.
`
}

func (*dashboardCmd) SetFlags(_ *flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	printMarkdown(renderer.Dashboard(book.Dashboard(time.Now())))
	return subcommands.ExitSuccess
}
