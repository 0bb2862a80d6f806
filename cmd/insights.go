package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/mrtz/pocketbook"
	"github.com/mrtz/pocketbook/renderer"
)

type insightsCmd struct{}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "display spending trends and the forecast" }
func (*insightsCmd) Usage() string {
	return `pbk insights

  Compares the current calendar month against the previous one: spending
  trend, top expense category and the savings forecast.
`
}

func (*insightsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *insightsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	var b strings.Builder
	b.WriteString("# Insights\n\n")
	for _, insight := range pocketbook.Insights(book.Ledger(), time.Now()) {
		fmt.Fprintf(&b, "- %s\n", renderer.Insight(insight))
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
