package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/rvaz/carteira"
)

type sellCmd struct {
	tradeFlags
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of shares" }
func (*sellCmd) Usage() string {
	return `carteira sell -t <ticker> -q <quantity> -p <price> [-c <costs>] [-d <date>]

  Records a sale in the ledger. The sale removes cost basis at the average
  price. Selling more than held on that date is rejected.

Usage Examples:
$ carteira sell -t HGLG11 -q 20 -p 165.00 -d 2024-03-05

`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := c.day()
	if err != nil {
		return fail(err)
	}
	tx, err := carteira.NewSell(day, c.ticker, c.quantity, c.price, c.costs).Validate()
	if err != nil {
		return fail(err)
	}

	ledger, err := carteira.LoadLedger(*ledgerFile)
	if err != nil {
		return fail(err)
	}
	if err := ledger.CheckSell(tx); err != nil {
		return fail(err)
	}
	ledger.Append(tx)
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded sale of %v %s at %s.\n", tx.Quantity, tx.Ticker, carteira.BRL(tx.Price))
	return subcommands.ExitSuccess
}
