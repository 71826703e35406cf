package carteira

import (
	"slices"
	"strings"

	"github.com/rvaz/carteira/date"
)

// PositionEntry is one holding in a position report.
type PositionEntry struct {
	Ticker       string
	Name         string
	Quantity     float64
	AveragePrice float64
	Price        float64 // resolved with the usual three-tier fallback
	Invested     float64
	MarketValue  float64
	Gain         float64
	GainPct      float64
	Allocation   float64  // percent of total invested
	DY           *float64 // nil when the vendor did not report it
	PVP          *float64
}

// PositionReport is the portfolio's holdings on a given date.
type PositionReport struct {
	Date          date.Date
	Entries       []PositionEntry
	TotalInvested float64
	TotalMarket   float64
	TotalGain     float64
	TotalGainPct  float64
}

// NewPositionReport assembles the holdings view for a given day.
func (p *Portfolio) NewPositionReport(on date.Date) *PositionReport {
	report := &PositionReport{Date: on}
	positions := p.Ledger.PositionsAsOf(on)

	for ticker, pos := range positions {
		entry := PositionEntry{
			Ticker:       ticker,
			Quantity:     pos.Quantity,
			AveragePrice: pos.AverageCost(),
			Price:        p.resolvePrice(ticker, on, pos),
			Invested:     pos.TotalCost,
		}
		if asset := p.Market.Get(ticker); asset != nil {
			entry.Name = asset.Name
			entry.DY = asset.DY
			entry.PVP = asset.PVP
		}
		entry.MarketValue = entry.Quantity * entry.Price
		entry.Gain = entry.MarketValue - entry.Invested
		if entry.Invested > epsilon {
			entry.GainPct = entry.Gain / entry.Invested * 100
		}
		report.Entries = append(report.Entries, entry)
		report.TotalInvested += entry.Invested
		report.TotalMarket += entry.MarketValue
	}

	report.TotalGain = report.TotalMarket - report.TotalInvested
	if report.TotalInvested > epsilon {
		report.TotalGainPct = report.TotalGain / report.TotalInvested * 100
	}
	for i := range report.Entries {
		if report.TotalInvested > epsilon {
			report.Entries[i].Allocation = report.Entries[i].Invested / report.TotalInvested * 100
		}
	}
	slices.SortFunc(report.Entries, func(a, b PositionEntry) int {
		return strings.Compare(a.Ticker, b.Ticker)
	})
	return report
}

// EvolutionReport is the invested-versus-market series plus its headline
// figures.
type EvolutionReport struct {
	Points   []EvolutionPoint
	Invested float64 // as of the last point
	Market   float64
	Gain     float64
	GainPct  float64
}

// NewEvolutionReport assembles the evolution view.
func (p *Portfolio) NewEvolutionReport() *EvolutionReport {
	report := &EvolutionReport{Points: p.Evolution()}
	if len(report.Points) == 0 {
		return report
	}
	last := report.Points[len(report.Points)-1]
	report.Invested = last.Invested
	report.Market = last.MarketValue
	report.Gain = report.Market - report.Invested
	if report.Invested > epsilon {
		report.GainPct = report.Gain / report.Invested * 100
	}
	return report
}

// IncomeReport is the dividend income view on a given day.
type IncomeReport struct {
	Date  date.Date
	Stats *DividendStats
}

// NewIncomeReport assembles the dividend income view for a given day.
func (p *Portfolio) NewIncomeReport(on date.Date) *IncomeReport {
	return &IncomeReport{Date: on, Stats: p.DividendStats(on)}
}

// TransactionReport lists the ledger, oldest first, optionally restricted to
// one ticker.
type TransactionReport struct {
	Ticker  string // empty means all
	Entries []Transaction
}

// NewTransactionReport assembles the transaction log view.
func (p *Portfolio) NewTransactionReport(ticker string) *TransactionReport {
	report := &TransactionReport{Ticker: ticker}
	for tx := range p.Ledger.Transactions() {
		if ticker != "" && tx.Ticker != ticker {
			continue
		}
		report.Entries = append(report.Entries, tx)
	}
	return report
}
