// Package cmd implements the CLI application to manage a dividend portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rvaz/carteira"
)

// Register the subcommands. A main package calls Register() and then
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&rmCmd{}, "transactions")
	c.Register(&txsCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")

	c.Register(&positionsCmd{}, "reports")
	c.Register(&evolutionCmd{}, "reports")
	c.Register(&incomeCmd{}, "reports")

	c.Register(&fetchCmd{}, "market data")

	c.Register(&assistCmd{}, "assistant")
	c.Register(&topicCmd{}, "documentation")
}

// As a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerFile = flag.String("ledger-file", "carteira.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var marketFile = flag.String("market-file", "market.jsonl", "Path to the market data snapshots file (JSONL format)")

// LoadPortfolio loads the ledger and the market data from the app files.
func LoadPortfolio() (*carteira.Portfolio, error) {
	ledger, err := carteira.LoadLedger(*ledgerFile)
	if err != nil {
		return nil, err
	}
	market, err := carteira.LoadMarketData(*marketFile)
	if err != nil {
		return nil, err
	}
	return carteira.NewPortfolio(ledger, market), nil
}

// SaveLedger writes the app ledger back in canonical form.
func SaveLedger(ledger *carteira.Ledger) error {
	return carteira.SaveLedger(*ledgerFile, ledger)
}

// SaveMarketData writes the app market data back in canonical form.
func SaveMarketData(market *carteira.MarketData) error {
	return carteira.SaveMarketData(*marketFile, market)
}

// printMarkdown renders a markdown report for the terminal. When the fancy
// rendering fails (dumb terminal, pipe), the raw markdown is still perfectly
// readable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
