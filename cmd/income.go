package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/rvaz/carteira/date"
	"github.com/rvaz/carteira/renderer"
)

type incomeCmd struct {
	date string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "show the dividend income" }
func (*incomeCmd) Usage() string {
	return `carteira income [-d <date>]

  Shows the dividend income: total received, income by month and by payer,
  the trailing monthly average, the annual forecast and the yield on cost.

`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date (YYYY-MM-DD). Today by default.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.IncomeMarkdown(p.NewIncomeReport(on)))
	return subcommands.ExitSuccess
}
