package carteira

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rvaz/carteira/date"
)

func TestLedger_EncodeDecode(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewBuy(date.MustParse("2024-02-01"), "MXRF11", 100, 10.0, 0),
		NewBuy(date.MustParse("2024-01-01"), "HGLG11", 50, 160.0, 4.90),
		NewSell(date.MustParse("2024-03-01"), "HGLG11", 10, 165.0, 0),
	)

	var buf bytes.Buffer
	if err := ledger.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	// One line per transaction, oldest first.
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"2024-01-01"`) {
		t.Errorf("first line = %s, want the oldest transaction", lines[0])
	}

	decoded, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Len() != ledger.Len() {
		t.Fatalf("decoded %d transactions, want %d", decoded.Len(), ledger.Len())
	}
	for tx := range ledger.Transactions() {
		got, ok := decoded.Get(tx.ID)
		if !ok {
			t.Fatalf("transaction %s lost in the round trip", tx.ID)
		}
		if got != tx {
			t.Errorf("round trip changed the transaction:\n got %+v\nwant %+v", got, tx)
		}
	}
}

func TestDecodeLedger_RejectsBadLines(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{name: "not json", line: "buy HGLG11 100"},
		{name: "missing ticker", line: `{"id":"x","type":"buy","quantity":10,"price":160,"date":"2024-01-01"}`},
		{name: "bad type", line: `{"id":"x","ticker":"HGLG11","type":"short","quantity":10,"price":160,"date":"2024-01-01"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.line + "\n")); err == nil {
				t.Error("DecodeLedger accepted a bad line")
			}
		})
	}
}

func TestDecodeLedger_SkipsEmptyLines(t *testing.T) {
	in := "\n" + `{"id":"x","ticker":"HGLG11","type":"buy","quantity":10,"price":160,"date":"2024-01-01"}` + "\n\n"
	ledger, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ledger.Len())
	}
}

func TestMarketData_EncodeDecode(t *testing.T) {
	market := NewMarketData()

	dy, pvp := 8.5, 0.98
	hglg := NewAsset("HGLG11")
	hglg.Name = "CSHG Logística"
	hglg.Segment = "Logística"
	hglg.Price = 165.0
	hglg.DY = &dy
	hglg.PVP = &pvp
	hglg.AppendPrice(date.MustParse("2024-01-10"), 160.0)
	hglg.AppendPrice(date.MustParse("2024-01-11"), 161.5)
	hglg.AppendDividend(DividendEvent{
		ExDate:      date.MustParse("2024-01-31"),
		PaymentDate: date.MustParse("2024-02-14"),
		Value:       1.10,
	})
	market.Add(hglg)

	// A bare snapshot with no fundamentals: DY and PVP stay nil after the
	// round trip, they must not come back as zeroes.
	market.Add(NewAsset("RZTR11"))

	var buf bytes.Buffer
	if err := market.Encode(&buf); err != nil {
		t.Fatal(err)
	}

	decoded, err := DecodeMarketData(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Len() != 2 {
		t.Fatalf("decoded %d assets, want 2", decoded.Len())
	}

	got := decoded.Get("HGLG11")
	if got == nil {
		t.Fatal("HGLG11 lost in the round trip")
	}
	if got.Name != hglg.Name || got.Segment != hglg.Segment || got.Price != hglg.Price {
		t.Errorf("asset fields changed: %+v", got)
	}
	if got.DY == nil || *got.DY != dy || got.PVP == nil || *got.PVP != pvp {
		t.Errorf("fundamentals changed: DY=%v PVP=%v", got.DY, got.PVP)
	}
	if price, ok := got.PriceOn(date.MustParse("2024-01-11")); !ok || price != 161.5 {
		t.Errorf("PriceOn(2024-01-11) = %v, %v", price, ok)
	}
	if divs := got.Dividends(); len(divs) != 1 || divs[0].Value != 1.10 {
		t.Errorf("Dividends() = %v", divs)
	}

	bare := decoded.Get("RZTR11")
	if bare == nil {
		t.Fatal("RZTR11 lost in the round trip")
	}
	if bare.DY != nil || bare.PVP != nil {
		t.Errorf("fundamentals fabricated: DY=%v PVP=%v", bare.DY, bare.PVP)
	}
}

func TestDecodeMarketData_RejectsDuplicateTicker(t *testing.T) {
	in := `{"ticker":"HGLG11"}` + "\n" + `{"ticker":"HGLG11"}` + "\n"
	if _, err := DecodeMarketData(strings.NewReader(in)); err == nil {
		t.Error("DecodeMarketData accepted a duplicate ticker")
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	ledgerPath := filepath.Join(dir, "carteira.jsonl")
	marketPath := filepath.Join(dir, "market.jsonl")

	// Missing files load as empty state.
	ledger, err := LoadLedger(ledgerPath)
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 0 {
		t.Fatalf("fresh ledger has %d transactions", ledger.Len())
	}
	market, err := LoadMarketData(marketPath)
	if err != nil {
		t.Fatal(err)
	}
	if market.Len() != 0 {
		t.Fatalf("fresh market data has %d assets", market.Len())
	}

	ledger.Append(NewBuy(date.MustParse("2024-01-01"), "HGLG11", 50, 160.0, 4.90))
	if err := SaveLedger(ledgerPath, ledger); err != nil {
		t.Fatal(err)
	}
	asset := NewAsset("HGLG11")
	asset.Price = 165.0
	market.Add(asset)
	if err := SaveMarketData(marketPath, market); err != nil {
		t.Fatal(err)
	}

	ledger2, err := LoadLedger(ledgerPath)
	if err != nil {
		t.Fatal(err)
	}
	if ledger2.Len() != 1 {
		t.Errorf("reloaded ledger has %d transactions, want 1", ledger2.Len())
	}
	market2, err := LoadMarketData(marketPath)
	if err != nil {
		t.Fatal(err)
	}
	if got := market2.Get("HGLG11"); got == nil || got.Price != 165.0 {
		t.Errorf("reloaded asset = %+v", got)
	}
}
