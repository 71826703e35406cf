package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/rvaz/carteira"
	"github.com/rvaz/carteira/date"
)

// tradeFlags are the flags shared by the buy and sell commands.
type tradeFlags struct {
	ticker   string
	quantity float64
	price    float64
	costs    float64
	date     string
}

func (t *tradeFlags) set(f *flag.FlagSet) {
	f.StringVar(&t.ticker, "t", "", "B3 ticker (e.g. HGLG11).")
	f.Float64Var(&t.quantity, "q", 0, "Number of shares.")
	f.Float64Var(&t.price, "p", 0, "Unit price in BRL.")
	f.Float64Var(&t.costs, "c", 0, "Brokerage and exchange fees in BRL.")
	f.StringVar(&t.date, "d", "", "Trade date (YYYY-MM-DD). Today by default.")
}

func (t *tradeFlags) day() (date.Date, error) {
	if t.date == "" {
		return date.Today(), nil
	}
	return date.Parse(t.date)
}

type buyCmd struct {
	tradeFlags
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the purchase of shares" }
func (*buyCmd) Usage() string {
	return `carteira buy -t <ticker> -q <quantity> -p <price> [-c <costs>] [-d <date>]

  Records a buy in the ledger. The gross amount plus costs is added to
  the position's cost basis.

Usage Examples:
$ carteira buy -t HGLG11 -q 100 -p 160.00 -c 4.90 -d 2024-01-10

`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.set(f) }

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := c.day()
	if err != nil {
		return fail(err)
	}
	tx, err := carteira.NewBuy(day, c.ticker, c.quantity, c.price, c.costs).Validate()
	if err != nil {
		return fail(err)
	}

	ledger, err := carteira.LoadLedger(*ledgerFile)
	if err != nil {
		return fail(err)
	}
	ledger.Append(tx)
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Recorded buy of %v %s at %s.\n", tx.Quantity, tx.Ticker, carteira.BRL(tx.Price))
	return subcommands.ExitSuccess
}
