package carteira

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/rvaz/carteira/date"
)

// Ledger is the transaction log: the only source of truth for holdings.
//
// Transactions in a Ledger are always kept in chronological order, with buys
// sorted before sells on the same day.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append adds transactions to the ledger and restores the chronological order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// Replace substitutes the transaction carrying the same ID. Edits never
// mutate a record in place; the whole fact is replaced.
func (l *Ledger) Replace(tx Transaction) error {
	for i, existing := range l.transactions {
		if existing.ID == tx.ID {
			l.transactions[i] = tx
			l.stableSort()
			return nil
		}
	}
	return fmt.Errorf("no transaction with id %q", tx.ID)
}

// Delete removes the transaction with the given ID.
func (l *Ledger) Delete(id string) error {
	for i, existing := range l.transactions {
		if existing.ID == id {
			l.transactions = slices.Delete(l.transactions, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("no transaction with id %q", id)
}

// Get returns the transaction with the given ID.
func (l *Ledger) Get(id string) (Transaction, bool) {
	for _, tx := range l.transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// stableSort sorts by (date, type) with buys before sells on the same day.
// The sort is stable, so otherwise-equal transactions keep their relative
// insertion order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Compare(l.transactions[j]) < 0
	})
}

// Transactions returns an iterator over all transactions in chronological order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// TickerTransactions returns an iterator over the transactions of one ticker
// dated on or before max, in chronological order.
func (l *Ledger) TickerTransactions(ticker string, max date.Date) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if tx.Date.After(max) {
				// The ledger is sorted, so it is safe to stop here.
				return
			}
			if tx.Ticker != ticker {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// Tickers returns the sorted set of tickers appearing in the ledger.
func (l *Ledger) Tickers() []string {
	set := make(map[string]struct{})
	for _, tx := range l.transactions {
		set[tx.Ticker] = struct{}{}
	}
	tickers := slices.Collect(maps.Keys(set))
	slices.Sort(tickers)
	return tickers
}

// FirstDate returns the date of the earliest transaction for a ticker.
func (l *Ledger) FirstDate(ticker string) (date.Date, bool) {
	for _, tx := range l.transactions {
		if tx.Ticker == ticker {
			return tx.Date, true
		}
	}
	return date.Date{}, false
}

// OldestDate returns the date of the earliest transaction in the ledger.
func (l *Ledger) OldestDate() date.Date {
	if len(l.transactions) == 0 {
		return date.Date{}
	}
	return l.transactions[0].Date
}

// NewestDate returns the date of the latest transaction in the ledger.
func (l *Ledger) NewestDate() date.Date {
	if len(l.transactions) == 0 {
		return date.Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}

// QuantityAsOf returns the signed share count for a ticker considering all
// transactions dated on or before the given day, clamped to zero.
func (l *Ledger) QuantityAsOf(ticker string, on date.Date) float64 {
	var quantity float64
	for tx := range l.TickerTransactions(ticker, on) {
		switch tx.Type {
		case Buy:
			quantity += tx.Quantity
		case Sell:
			quantity -= tx.Quantity
		}
	}
	return max(quantity, 0)
}

// CheckSell verifies that a sell does not exceed the position held on its
// date. Entry forms call this before appending; the engine itself only clamps.
func (l *Ledger) CheckSell(tx Transaction) error {
	if tx.Type != Sell {
		return nil
	}
	held := l.QuantityAsOf(tx.Ticker, tx.Date)
	if tx.Quantity > held+epsilon {
		return fmt.Errorf("on %s, cannot sell %v of %s, position is only %v", tx.Date, tx.Quantity, tx.Ticker, held)
	}
	return nil
}
