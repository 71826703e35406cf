package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/rvaz/carteira/date"
	"github.com/rvaz/carteira/renderer"
)

type positionsCmd struct {
	date string
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "show the positions held" }
func (*positionsCmd) Usage() string {
	return `carteira positions [-d <date>]

  Shows every position held on the given date: quantity, average price,
  latest price, invested amount, market value, gain and allocation.

`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date (YYYY-MM-DD). Today by default.")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := date.Today()
	if c.date != "" {
		var err error
		if on, err = date.Parse(c.date); err != nil {
			return fail(err)
		}
	}

	p, err := LoadPortfolio()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.PositionsMarkdown(p.NewPositionReport(on)))
	return subcommands.ExitSuccess
}
