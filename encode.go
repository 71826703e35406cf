package carteira

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rvaz/carteira/date"
)

// This file persists the ledger and the market data snapshots as JSONL, one
// record per line, so the files stay human-readable, diffable and
// git-friendly. The transaction log is the only state that must survive
// across sessions; market data is a cache that can always be refetched.

// DecodeLedger decodes transactions from a stream of JSONL data and returns a
// sorted ledger. Empty lines are skipped.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return nil, fmt.Errorf("invalid transaction line %q: %w", string(line), err)
		}
		tx, err := tx.Validate()
		if err != nil {
			return nil, fmt.Errorf("invalid transaction on %s: %w", tx.Date, err)
		}
		ledger.Append(tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger: %w", err)
	}
	return ledger, nil
}

// EncodeTransaction writes a single transaction as one JSON line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger in canonical JSONL form: sorted by
// (date, type), stable for same-day records.
func (l *Ledger) Encode(w io.Writer) error {
	l.stableSort()
	for _, tx := range l.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// jsonAsset is the persisted shape of an asset snapshot.
type jsonAsset struct {
	Ticker    string          `json:"ticker"`
	Name      string          `json:"name,omitempty"`
	Segment   string          `json:"segment,omitempty"`
	Price     float64         `json:"price,omitempty"`
	DY        *float64        `json:"dy,omitempty"`
	PVP       *float64        `json:"pvp,omitempty"`
	Prices    []jsonPrice     `json:"prices,omitempty"`
	Dividends []DividendEvent `json:"dividends,omitempty"`
}

type jsonPrice struct {
	Date  date.Date `json:"date"`
	Price float64   `json:"price"`
}

// DecodeMarketData decodes asset snapshots from a stream of JSONL data.
func DecodeMarketData(r io.Reader) (*MarketData, error) {
	market := NewMarketData()
	scanner := bufio.NewScanner(r)
	// Asset lines can be long: a few years of daily prices per ticker.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ja jsonAsset
		if err := json.Unmarshal(line, &ja); err != nil {
			return nil, fmt.Errorf("invalid asset line %q: %w", string(line), err)
		}
		if ja.Ticker == "" {
			return nil, fmt.Errorf("asset line without ticker: %q", string(line))
		}
		if market.Has(ja.Ticker) {
			return nil, fmt.Errorf("ticker %q is defined twice", ja.Ticker)
		}
		asset := NewAsset(ja.Ticker)
		asset.Name = ja.Name
		asset.Segment = ja.Segment
		asset.Price = ja.Price
		asset.DY = ja.DY
		asset.PVP = ja.PVP
		for _, p := range ja.Prices {
			asset.AppendPrice(p.Date, p.Price)
		}
		for _, ev := range ja.Dividends {
			asset.AppendDividend(ev)
		}
		market.Add(asset)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading market data: %w", err)
	}
	return market, nil
}

// Encode persists the market data as JSONL, one asset per line, in ticker
// order so the output is canonical.
func (m *MarketData) Encode(w io.Writer) error {
	for asset := range m.All() {
		ja := jsonAsset{
			Ticker:    asset.Ticker,
			Name:      asset.Name,
			Segment:   asset.Segment,
			Price:     asset.Price,
			DY:        asset.DY,
			PVP:       asset.PVP,
			Dividends: asset.Dividends(),
		}
		for day, price := range asset.Prices() {
			ja.Prices = append(ja.Prices, jsonPrice{Date: day, Price: price})
		}
		data, err := json.Marshal(ja)
		if err != nil {
			return fmt.Errorf("failed to marshal asset %s: %w", asset.Ticker, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write asset %s: %w", asset.Ticker, err)
		}
	}
	return nil
}
