package carteira

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadLedger reads a ledger from a JSONL file. A missing file yields an empty
// ledger: a fresh portfolio has no transactions yet.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return ledger, nil
}

// SaveLedger writes the ledger to a JSONL file in canonical form. The write
// goes through a temporary file and a rename, so a crash mid-write cannot
// truncate the log.
func SaveLedger(path string, ledger *Ledger) error {
	return atomicWrite(path, func(f *os.File) error { return ledger.Encode(f) })
}

// LoadMarketData reads asset snapshots from a JSONL file. A missing file
// yields an empty collection.
func LoadMarketData(path string) (*MarketData, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewMarketData(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open market data file %q: %w", path, err)
	}
	defer f.Close()

	market, err := DecodeMarketData(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode market data file %q: %w", path, err)
	}
	return market, nil
}

// SaveMarketData writes the market data to a JSONL file in canonical form.
func SaveMarketData(path string, market *MarketData) error {
	return atomicWrite(path, func(f *os.File) error { return market.Encode(f) })
}

func atomicWrite(path string, write func(*os.File) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
