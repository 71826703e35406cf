package carteira

import (
	"maps"
	"slices"
	"strings"

	"github.com/rvaz/carteira/date"
)

// MonthlyIncome is the dividend income attributed to one calendar month.
type MonthlyIncome struct {
	Month string // "YYYY-MM", keyed by payment date
	Total float64
}

// PayerIncome aggregates the income received from one asset.
type PayerIncome struct {
	Ticker         string
	Total          float64        // attributed income over the whole history
	Quantity       float64        // shares currently held
	AnnualForecast float64        // quantity × price × DY/100; 0 when DY is unknown
	LastExDate     date.Date      // ex-date of the most recent attributed event
	Next           *DividendEvent // upcoming or, failing that, latest past event
}

// DividendStats is the full income picture of the portfolio on a given day.
type DividendStats struct {
	TotalReceived  float64
	Monthly        []MonthlyIncome
	Payers         []PayerIncome
	CurrentMonth   float64
	AverageIncome  float64 // mean of the nonzero months in the trailing year
	AnnualForecast float64
	YieldOnCost    float64 // percent
}

// DividendStats attributes every dividend event to the shares owned on its
// ex-date and aggregates the result by month and by payer, as seen on the
// given day.
//
// Ownership on the ex-date is recomputed by replaying the ticker's
// transactions with date ≤ ex-date, clamped to zero: an event predating the
// first transaction, or landing on a day with nothing held, contributes
// nothing and is silently skipped.
func (p *Portfolio) DividendStats(on date.Date) *DividendStats {
	stats := &DividendStats{}
	monthly := make(map[string]float64)
	positions := p.Ledger.Positions()

	for _, ticker := range p.Ledger.Tickers() {
		asset := p.Market.Get(ticker)
		if asset == nil || len(asset.dividends) == 0 {
			continue
		}
		firstDate, ok := p.Ledger.FirstDate(ticker)
		if !ok {
			continue
		}

		payer := PayerIncome{Ticker: ticker, Quantity: positions[ticker].Quantity}
		for _, ev := range asset.Dividends() {
			if ev.ExDate.Before(firstDate) {
				continue
			}
			owned := p.Ledger.QuantityAsOf(ticker, ev.ExDate)
			if owned <= epsilon {
				continue
			}
			amount := owned * ev.Value
			stats.TotalReceived += amount
			payer.Total += amount
			monthly[ev.PaymentDate.MonthKey()] += amount
			payer.LastExDate = ev.ExDate
		}
		payer.Next = nextPayment(asset.Dividends(), on)

		if asset.DY != nil && payer.Quantity > epsilon {
			payer.AnnualForecast = payer.Quantity * asset.Price * (*asset.DY) / 100
			stats.AnnualForecast += payer.AnnualForecast
		}
		stats.Payers = append(stats.Payers, payer)
	}

	slices.SortFunc(stats.Payers, func(a, b PayerIncome) int {
		if a.Total != b.Total {
			if a.Total > b.Total {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Ticker, b.Ticker)
	})

	months := slices.Collect(maps.Keys(monthly))
	slices.Sort(months)
	for _, m := range months {
		stats.Monthly = append(stats.Monthly, MonthlyIncome{Month: m, Total: monthly[m]})
	}

	stats.CurrentMonth = monthly[on.MonthKey()]
	stats.AverageIncome = trailingAverage(monthly, on)

	if invested := p.Ledger.TotalInvested(); invested > epsilon {
		stats.YieldOnCost = stats.AnnualForecast / invested * 100
	}
	return stats
}

// nextPayment picks the display event for an asset: the earliest event that
// is provisioned or pays on/after the given day, else the most recent past
// event.
func nextPayment(events []DividendEvent, on date.Date) *DividendEvent {
	for i := range events {
		ev := events[i]
		if ev.Provisioned || !ev.PaymentDate.Before(on) {
			return &ev
		}
	}
	if len(events) == 0 {
		return nil
	}
	last := events[len(events)-1]
	return &last
}

// trailingAverage is the mean of the nonzero months within the 12-month
// window ending on the given day. Months with no income, from before the
// investor held anything or from gaps, do not dilute the average.
func trailingAverage(monthly map[string]float64, on date.Date) float64 {
	var sum float64
	var count int
	// Anchor on the first of the month so stepping back never skips a short
	// month (e.g. the 31st minus one month would normalize past February).
	anchor := date.New(on.Year(), on.Month(), 1)
	for i := 0; i < 12; i++ {
		if total := monthly[anchor.AddMonths(-i).MonthKey()]; total != 0 {
			sum += total
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}
