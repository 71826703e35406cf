package carteira

// Portfolio pairs the transaction ledger with a market data snapshot. It is
// the entry point for every derived computation that needs prices or dividend
// histories: the ledger alone answers "what do I hold", the portfolio answers
// "what is it worth" and "what does it pay".
type Portfolio struct {
	Ledger *Ledger
	Market *MarketData
}

// NewPortfolio creates a portfolio from a ledger and market data.
func NewPortfolio(ledger *Ledger, market *MarketData) *Portfolio {
	return &Portfolio{Ledger: ledger, Market: market}
}
