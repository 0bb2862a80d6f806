// Command pbk is the pocketbook CLI: a personal finance ledger that records
// income and expenses and derives balances, reports, goals and insights.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/mrtz/pocketbook"
	"github.com/mrtz/pocketbook/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// A .env next to the book is a convenient place for GEMINI_API_KEY and
	// the POCKETBOOK_* variables. Absence is fine.
	godotenv.Load()

	if currency := os.Getenv(cmd.EnvCurrency); currency != "" {
		pocketbook.DisplayCurrency = currency
	}

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for the subcommands and global flags.
// It only takes over when the shell is asking for completions.
func completion() {
	periods := predict.Set{"daily", "weekly", "monthly", "yearly"}

	pbk := &complete.Command{
		Flags: map[string]complete.Predictor{
			"file":    predict.Files("*"),
			"backend": predict.Set{"file", "sqlite"},
		},
		Sub: map[string]*complete.Command{
			"income":     {Flags: map[string]complete.Predictor{"a": predict.Nothing, "t": predict.Nothing, "d": predict.Nothing}},
			"expense":    {Flags: map[string]complete.Predictor{"a": predict.Nothing, "t": predict.Nothing, "d": predict.Nothing}},
			"reverse":    {Flags: map[string]complete.Predictor{"id": predict.Nothing, "y": predict.Nothing}},
			"tx":         {Flags: map[string]complete.Predictor{"p": periods, "all": predict.Nothing, "head": predict.Nothing, "tail": predict.Nothing}},
			"goal":       {Flags: map[string]complete.Predictor{"n": predict.Nothing, "target": predict.Nothing, "monthly": predict.Nothing}},
			"goals":      {},
			"contribute": {Flags: map[string]complete.Predictor{"n": predict.Nothing, "a": predict.Nothing}},
			"dashboard":  {},
			"report":     {Flags: map[string]complete.Predictor{"p": periods}},
			"daily":      {},
			"weekly":     {},
			"monthly":    {},
			"yearly":     {},
			"insights":   {},
			"export":     {Flags: map[string]complete.Predictor{"o": predict.Files("*")}},
			"import": {
				Args: predict.Files("*"),
				Flags: map[string]complete.Predictor{
					"statement": predict.Nothing,
					"rows":      predict.Nothing,
					"amount":    predict.Nothing,
					"date":      predict.Nothing,
					"tag":       predict.Nothing,
					"desc":      predict.Nothing,
					"type":      predict.Nothing,
				},
			},
			"topic":  {},
			"assist": {},
		},
	}
	pbk.Complete("pbk")
}
