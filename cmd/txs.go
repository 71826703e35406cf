package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/rvaz/carteira/renderer"
)

type txsCmd struct {
	ticker string
}

func (*txsCmd) Name() string     { return "txs" }
func (*txsCmd) Synopsis() string { return "list the transactions in the ledger" }
func (*txsCmd) Usage() string {
	return `carteira txs [-t <ticker>]

  Lists the transactions in the ledger, oldest first, with their IDs.

`
}

func (c *txsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Restrict the list to this ticker.")
}

func (c *txsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := LoadPortfolio()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.TransactionsMarkdown(p.NewTransactionReport(c.ticker)))
	return subcommands.ExitSuccess
}
