package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/rvaz/carteira"
)

type rmCmd struct {
	id string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a transaction by ID" }
func (*rmCmd) Usage() string {
	return `carteira rm -id <id>

  Removes a transaction from the ledger. Use 'carteira txs' to find IDs.

`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the transaction to remove.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return fail(fmt.Errorf("the -id flag is required"))
	}

	ledger, err := carteira.LoadLedger(*ledgerFile)
	if err != nil {
		return fail(err)
	}
	if err := ledger.Delete(c.id); err != nil {
		return fail(err)
	}
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Removed transaction %s.\n", c.id)
	return subcommands.ExitSuccess
}
