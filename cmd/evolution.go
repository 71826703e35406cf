package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/rvaz/carteira/renderer"
)

type evolutionCmd struct{}

func (*evolutionCmd) Name() string     { return "evolution" }
func (*evolutionCmd) Synopsis() string { return "show invested versus market value over time" }
func (*evolutionCmd) Usage() string {
	return `carteira evolution

  Shows the history of invested amount versus market value, one row per day
  with a known price or a transaction.

`
}

func (*evolutionCmd) SetFlags(f *flag.FlagSet) {}

func (c *evolutionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.EvolutionMarkdown(p.NewEvolutionReport()))
	return subcommands.ExitSuccess
}
