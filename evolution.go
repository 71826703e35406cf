package carteira

import (
	"github.com/rvaz/carteira/date"
)

// EvolutionPoint is one day in the invested-versus-market-value series.
type EvolutionPoint struct {
	Date        date.Date
	Invested    float64
	MarketValue float64
}

// Evolution replays the ledger chronologically over the union of all known
// price-history dates and transaction dates, producing one point per date.
//
// At each date, for every ticker held, the market price is resolved in three
// tiers: the exact price on that day, else the most recent price before it,
// else the position's own average cost. The last tier deliberately implies
// zero unrealized gain: with no vendor data at all, the engine never
// fabricates a gain or a loss. An empty ledger yields an empty series.
func (p *Portfolio) Evolution() []EvolutionPoint {
	if p.Ledger.Len() == 0 {
		return nil
	}

	// The date axis: every day any ticker has a price, plus every day a
	// transaction happened.
	series := make([][]date.Date, 0, p.Market.Len()+1)
	for _, ticker := range p.Ledger.Tickers() {
		if asset := p.Market.Get(ticker); asset != nil {
			series = append(series, asset.PriceDays())
		}
	}
	txDays := make([]date.Date, 0, p.Ledger.Len())
	for tx := range p.Ledger.Transactions() {
		txDays = append(txDays, tx.Date)
	}
	series = append(series, txDays)
	days := date.Union(series...)

	// Group transactions by day for O(1) lookup during the replay.
	byDay := make(map[date.Date][]Transaction)
	for tx := range p.Ledger.Transactions() {
		byDay[tx.Date] = append(byDay[tx.Date], tx)
	}

	positions := make(map[string]Position)
	points := make([]EvolutionPoint, 0, len(days))
	for _, day := range days {
		// Apply that day's transactions before taking the snapshot. They are
		// already in (date, type) order from the ledger.
		for _, tx := range byDay[day] {
			positions[tx.Ticker] = positions[tx.Ticker].apply(tx)
		}

		var invested, market float64
		for ticker, pos := range positions {
			if pos.Quantity <= epsilon {
				continue
			}
			invested += pos.TotalCost
			market += pos.Quantity * p.resolvePrice(ticker, day, pos)
		}

		// Skip all-zero leading days (price history older than the first buy).
		if invested == 0 && market == 0 {
			continue
		}
		points = append(points, EvolutionPoint{Date: day, Invested: invested, MarketValue: market})
	}
	return points
}

// resolvePrice implements the three-tier price fallback for one ticker.
func (p *Portfolio) resolvePrice(ticker string, on date.Date, pos Position) float64 {
	if asset := p.Market.Get(ticker); asset != nil {
		if price, ok := asset.PriceAsOf(on); ok {
			return price
		}
	}
	return pos.AverageCost()
}
