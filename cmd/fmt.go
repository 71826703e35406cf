package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/rvaz/carteira"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `carteira fmt

  Validates and formats the ledger file. This command reads all
  transactions, validates them, applies available quick-fixes (like missing
  IDs), sorts them by date, and writes them back in a canonical JSONL
  format.

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Loading validates and sorts; saving writes the canonical form.
	ledger, err := carteira.LoadLedger(*ledgerFile)
	if err != nil {
		return fail(err)
	}
	if err := SaveLedger(ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Formatted %d transactions in %s.\n", ledger.Len(), *ledgerFile)
	return subcommands.ExitSuccess
}
