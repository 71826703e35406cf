package carteira

import "github.com/rvaz/carteira/date"

// epsilon is the threshold under which a quantity or cost is considered zero.
// Repeated add/subtract over many transactions leaves floating-point residue;
// a position that small is fully closed.
const epsilon = 1e-6

// Position is the derived state of one holding: how many shares are held and
// what they cost, under the weighted-average-cost method.
type Position struct {
	Quantity  float64
	TotalCost float64
}

// AverageCost returns the cost per share, or 0 for an empty position.
func (p Position) AverageCost() float64 {
	if p.Quantity < epsilon {
		return 0
	}
	return p.TotalCost / p.Quantity
}

// apply folds one transaction into the position.
//
// A buy adds its gross amount plus fees to the cost basis. A sell removes
// cost proportionally to the current average cost per share; a sell exceeding
// the held quantity is clamped to it rather than rejected, so inconsistent
// history degrades instead of crashing. After either, a quantity below
// epsilon snaps the whole position to zero.
func (p Position) apply(tx Transaction) Position {
	switch tx.Type {
	case Buy:
		p.TotalCost += tx.Gross() + tx.Costs
		p.Quantity += tx.Quantity
	case Sell:
		sellQty := min(tx.Quantity, p.Quantity)
		avgPrice := 0.0
		if p.Quantity > epsilon {
			avgPrice = p.TotalCost / p.Quantity
		}
		p.TotalCost -= sellQty * avgPrice
		p.Quantity -= sellQty
	}
	if p.Quantity < epsilon {
		return Position{}
	}
	return p
}

// Positions reduces the whole transaction log into the current per-ticker
// positions. Fully closed positions are absent from the result.
//
// The computation is a pure function of the ledger, recomputed in full on
// every call: edits and deletes can never leave stale derived state.
func (l *Ledger) Positions() map[string]Position {
	return l.reduce(func(Transaction) bool { return true })
}

// PositionsAsOf is like Positions but only considers transactions dated on or
// before the given day.
func (l *Ledger) PositionsAsOf(on date.Date) map[string]Position {
	return l.reduce(func(tx Transaction) bool { return !tx.Date.After(on) })
}

func (l *Ledger) reduce(keep func(Transaction) bool) map[string]Position {
	positions := make(map[string]Position)
	for _, tx := range l.transactions {
		if !keep(tx) {
			break
		}
		positions[tx.Ticker] = positions[tx.Ticker].apply(tx)
	}
	for ticker, pos := range positions {
		if pos.Quantity <= epsilon {
			delete(positions, ticker)
		}
	}
	return positions
}

// TotalInvested returns the summed cost basis of all open positions.
func (l *Ledger) TotalInvested() float64 {
	var total float64
	for _, pos := range l.Positions() {
		total += pos.TotalCost
	}
	return total
}
