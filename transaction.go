package carteira

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rvaz/carteira/date"
)

// TxType identifies the kind of a transaction.
type TxType string

// Transaction types recorded in the ledger.
const (
	Buy  TxType = "buy"
	Sell TxType = "sell"
)

// rank orders types on the same day: applying the buy before the sell avoids
// spurious negative-quantity states when both happen on one date.
func (t TxType) rank() int {
	if t == Buy {
		return 0
	}
	return 1
}

// Transaction is an immutable historical fact: the purchase or sale of a
// quantity of an asset on a given day. Transactions are never mutated in
// place; an edit replaces the whole record by ID.
type Transaction struct {
	ID       string    `json:"id"`
	Ticker   string    `json:"ticker"`
	Type     TxType    `json:"type"`
	Quantity float64   `json:"quantity"`
	Price    float64   `json:"price"` // unit price
	Date     date.Date `json:"date"`
	Costs    float64   `json:"costs,omitempty"` // brokerage and exchange fees
}

// NewBuy creates a new buy transaction with a fresh ID.
func NewBuy(day date.Date, ticker string, quantity, price, costs float64) Transaction {
	return Transaction{
		ID:       uuid.NewString(),
		Ticker:   ticker,
		Type:     Buy,
		Quantity: quantity,
		Price:    price,
		Date:     day,
		Costs:    costs,
	}
}

// NewSell creates a new sell transaction with a fresh ID.
func NewSell(day date.Date, ticker string, quantity, price, costs float64) Transaction {
	return Transaction{
		ID:       uuid.NewString(),
		Ticker:   ticker,
		Type:     Sell,
		Quantity: quantity,
		Price:    price,
		Date:     day,
		Costs:    costs,
	}
}

// Gross returns the traded amount before fees.
func (t Transaction) Gross() float64 { return t.Quantity * t.Price }

// Compare orders transactions chronologically, with buys before sells on the
// same day.
func (t Transaction) Compare(o Transaction) int {
	if c := t.Date.Compare(o.Date); c != 0 {
		return c
	}
	return cmp.Compare(t.Type.rank(), o.Type.rank())
}

// Validate checks a transaction for correctness at entry time and applies
// quick fixes where applicable (missing ID, missing date). It returns the
// validated, possibly amended, transaction.
//
// It does not check the sale against the position held: the engine clamps
// over-sells defensively, and rejecting them is the entry form's job (see
// Ledger.CheckSell).
func (t Transaction) Validate() (Transaction, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Date.IsZero() {
		t.Date = date.Today()
	}
	if t.Ticker == "" {
		return t, errors.New("transaction ticker is missing")
	}
	if t.Type != Buy && t.Type != Sell {
		return t, fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if t.Quantity <= 0 {
		return t, fmt.Errorf("transaction quantity must be positive, got %v", t.Quantity)
	}
	if t.Price <= 0 {
		return t, fmt.Errorf("transaction price must be positive, got %v", t.Price)
	}
	if t.Costs < 0 {
		return t, fmt.Errorf("transaction costs cannot be negative, got %v", t.Costs)
	}
	return t, nil
}
