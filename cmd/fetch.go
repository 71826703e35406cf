package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/rvaz/carteira"
	"github.com/rvaz/carteira/brapi"
)

type fetchCmd struct {
	token    string
	intraday bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "sync market data from the vendors" }
func (*fetchCmd) Usage() string {
	return `carteira fetch [-token <token>] [-u]

  Syncs the market data snapshots for every ticker in the ledger from
  brapi.dev: latest price, fundamentals, daily price history and the
  dividend calendar. The token comes from -token or the ` + brapi.TokenEnvVar + `
  environment variable.

  With -u, only refreshes the latest prices from the statusinvest intraday
  feed instead. No token needed.

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.token, "token", "", "brapi.dev API token.")
	f.BoolVar(&c.intraday, "u", false, "Intraday price refresh only.")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := carteira.LoadLedger(*ledgerFile)
	if err != nil {
		return fail(err)
	}
	market, err := carteira.LoadMarketData(*marketFile)
	if err != nil {
		return fail(err)
	}

	if c.intraday {
		if err := market.UpdateIntraday(); err != nil {
			return fail(err)
		}
	} else {
		if err := brapi.Sync(c.token, market, ledger.Tickers()); err != nil {
			return fail(err)
		}
	}

	if err := SaveMarketData(market); err != nil {
		return fail(err)
	}
	fmt.Printf("Synced %d assets into %s.\n", market.Len(), *marketFile)
	return subcommands.ExitSuccess
}
