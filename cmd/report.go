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

// --- Report Command ---

type reportCmd struct {
	period string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a period report" }
func (*reportCmd) Usage() string {
	return `pbk report -p <period>

  Displays the active transactions of a period window anchored on today,
  with their totals and expense breakdown. The period is one of daily,
  weekly, monthly, yearly.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "monthly", "Period of the report (daily, weekly, monthly, yearly)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := pocketbook.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}
	return runReport(period)
}

func runReport(period pocketbook.Period) subcommands.ExitStatus {
	book, closeBook, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer closeBook()

	printMarkdown(renderer.Report(book.Report(period, time.Now())))
	return subcommands.ExitSuccess
}

// --- Preset Commands (daily, weekly, monthly, yearly) ---

// presetCmd is a report command bound to a fixed period.
type presetCmd struct {
	period pocketbook.Period
}

func newPresetCmd(p pocketbook.Period) *presetCmd { return &presetCmd{period: p} }

func (c *presetCmd) Name() string { return c.period.String() }
func (c *presetCmd) Synopsis() string {
	return fmt.Sprintf("display the report of the current %s", c.period.Name())
}
func (c *presetCmd) Usage() string {
	return fmt.Sprintf(`pbk %s

  Shortcut for 'pbk report -p %s'.
`, c.period, c.period)
}

func (*presetCmd) SetFlags(_ *flag.FlagSet) {}

func (c *presetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runReport(c.period)
}
