// Command carteira tracks a dividend portfolio of B3 real estate funds.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rvaz/carteira/cmd"
)

func main() {
	// Bash/zsh completion, a no-op outside a completion context.
	completion().Complete("carteira")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func editFlags(trade map[string]complete.Predictor) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{"id": predict.Nothing}
	for name, p := range trade {
		flags[name] = p
	}
	return flags
}

func completion() *complete.Command {
	files := predict.Files("*.jsonl")
	trade := map[string]complete.Predictor{
		"t": predict.Nothing,
		"q": predict.Nothing,
		"p": predict.Nothing,
		"c": predict.Nothing,
		"d": predict.Nothing,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": files,
			"market-file": files,
		},
		Sub: map[string]*complete.Command{
			"buy":       {Flags: trade},
			"sell":      {Flags: trade},
			"edit":      {Flags: editFlags(trade)},
			"rm":        {Flags: map[string]complete.Predictor{"id": predict.Nothing}},
			"txs":       {Flags: map[string]complete.Predictor{"t": predict.Nothing}},
			"positions": {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
			"evolution": {},
			"income":    {Flags: map[string]complete.Predictor{"d": predict.Nothing}},
			"fetch":     {Flags: map[string]complete.Predictor{"token": predict.Nothing, "u": predict.Nothing}},
			"assist":    {},
			"fmt":       {},
			"topic":     {Args: predict.Set{"getting-started", "accounting", "income", "market-data", "readme", "*"}},
		},
	}
}
