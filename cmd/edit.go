package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/rvaz/carteira"
	"github.com/rvaz/carteira/date"
)

type editCmd struct {
	id string
	tradeFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a transaction by ID" }
func (*editCmd) Usage() string {
	return `carteira edit -id <id> [-t <ticker>] [-q <quantity>] [-p <price>] [-c <costs>] [-d <date>]

  Replaces fields of an existing transaction. Only the flags given on the
  command line are changed; the ID stays. Use 'carteira txs' to find IDs.

`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the transaction to edit.")
	c.set(f)
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("the -id flag is required"))
	}

	ledger, err := carteira.LoadLedger(*ledgerFile)
	if err != nil {
		return fail(err)
	}
	tx, ok := ledger.Get(c.id)
	if !ok {
		return fail(fmt.Errorf("no transaction with ID %q", c.id))
	}

	// Apply only the flags that were explicitly set.
	var flagErr error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "t":
			tx.Ticker = c.ticker
		case "q":
			tx.Quantity = c.quantity
		case "p":
			tx.Price = c.price
		case "c":
			tx.Costs = c.costs
		case "d":
			day, err := date.Parse(c.date)
			if err != nil {
				flagErr = err
				return
			}
			tx.Date = day
		}
	})
	if flagErr != nil {
		return fail(flagErr)
	}

	tx, err = tx.Validate()
	if err != nil {
		return fail(err)
	}
	if err := ledger.Replace(tx); err != nil {
		return fail(err)
	}
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Updated transaction %s.\n", tx.ID)
	return subcommands.ExitSuccess
}
