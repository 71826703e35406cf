package carteira

import (
	"iter"
	"maps"
	"slices"

	"github.com/rvaz/carteira/date"
)

// DividendEvent is one cash distribution announced by an asset. Ownership on
// the ex-date determines entitlement; the payment lands on PaymentDate.
type DividendEvent struct {
	ExDate      date.Date `json:"exDate"`
	PaymentDate date.Date `json:"paymentDate"`
	Value       float64   `json:"value"` // per share
	Provisioned bool      `json:"provisioned,omitempty"`
}

// Asset is the market snapshot of one ticker, supplied by the vendor
// collaborators. The engine reads it, never writes it.
//
// Fundamentals are optional: a nil DY or PVP means the vendor did not report
// it, which every consumer must treat differently from a reported zero.
type Asset struct {
	Ticker  string
	Name    string
	Segment string
	Price   float64  // latest quote
	DY      *float64 // trailing dividend yield, in percent
	PVP     *float64 // price over book value

	prices    date.History[float64]
	dividends []DividendEvent
}

// NewAsset creates an empty snapshot for a ticker.
func NewAsset(ticker string) *Asset {
	return &Asset{Ticker: ticker}
}

// AppendPrice records a closing price for a day, overwriting any previous
// value on that day.
func (a *Asset) AppendPrice(on date.Date, price float64) {
	a.prices.Append(on, price)
}

// PriceOn returns the price recorded exactly on that day.
func (a *Asset) PriceOn(on date.Date) (float64, bool) {
	return a.prices.Get(on)
}

// PriceAsOf returns the price on that day or the most recent one before it.
func (a *Asset) PriceAsOf(on date.Date) (float64, bool) {
	return a.prices.ValueAsOf(on)
}

// PriceDays returns all dates carrying a price point, in chronological order.
func (a *Asset) PriceDays() []date.Date {
	return a.prices.Days()
}

// Prices returns an iterator over the price history in chronological order.
func (a *Asset) Prices() iter.Seq2[date.Date, float64] {
	return a.prices.Values()
}

// AppendDividend records a dividend event, replacing any existing event with
// the same ex-date: the last data wins.
func (a *Asset) AppendDividend(ev DividendEvent) {
	for i, existing := range a.dividends {
		if existing.ExDate == ev.ExDate {
			a.dividends[i] = ev
			return
		}
	}
	a.dividends = append(a.dividends, ev)
	slices.SortFunc(a.dividends, func(x, y DividendEvent) int {
		return x.ExDate.Compare(y.ExDate)
	})
}

// Dividends returns the dividend events sorted by ascending ex-date.
func (a *Asset) Dividends() []DividendEvent {
	return slices.Clone(a.dividends)
}

// MarketData holds the asset snapshots for a set of tickers.
type MarketData struct {
	index map[string]*Asset
}

// NewMarketData returns an empty market data collection.
func NewMarketData() *MarketData {
	return &MarketData{index: make(map[string]*Asset)}
}

// Add registers an asset, replacing any snapshot under the same ticker.
func (m *MarketData) Add(a *Asset) { m.index[a.Ticker] = a }

// Has reports whether a snapshot exists for the ticker.
func (m *MarketData) Has(ticker string) bool {
	_, ok := m.index[ticker]
	return ok
}

// Get returns the snapshot for a ticker, or nil if unknown.
func (m *MarketData) Get(ticker string) *Asset { return m.index[ticker] }

// Len returns the number of assets in the collection.
func (m *MarketData) Len() int { return len(m.index) }

// All iterates over the assets in ticker order.
func (m *MarketData) All() iter.Seq[*Asset] {
	return func(yield func(*Asset) bool) {
		tickers := slices.Collect(maps.Keys(m.index))
		slices.Sort(tickers)
		for _, ticker := range tickers {
			if !yield(m.index[ticker]) {
				return
			}
		}
	}
}
