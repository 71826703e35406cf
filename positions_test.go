package carteira

import (
	"math"
	"testing"

	"github.com/rvaz/carteira/date"
)

// approx fails the test when got is not within tol of want. Weighted-average
// arithmetic is inexact, exact comparison would be brittle.
func approx(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

func TestLedger_Positions_BuysOnly(t *testing.T) {
	// A sequence of only buys accumulates cost exactly.
	ledger := NewLedger()
	ledger.Append(
		NewBuy(date.MustParse("2023-01-10"), "HGLG11", 100, 160.0, 4.90),
		NewBuy(date.MustParse("2023-02-10"), "HGLG11", 50, 155.0, 4.90),
		NewBuy(date.MustParse("2023-03-10"), "MXRF11", 300, 10.50, 0),
	)

	positions := ledger.Positions()
	if len(positions) != 2 {
		t.Fatalf("len(positions) = %d, want 2", len(positions))
	}

	hglg := positions["HGLG11"]
	if hglg.Quantity != 150 {
		t.Errorf("HGLG11 quantity = %v, want 150", hglg.Quantity)
	}
	wantCost := 100*160.0 + 4.90 + 50*155.0 + 4.90
	if hglg.TotalCost != wantCost {
		t.Errorf("HGLG11 totalCost = %v, want %v", hglg.TotalCost, wantCost)
	}

	mxrf := positions["MXRF11"]
	if mxrf.Quantity != 300 || mxrf.TotalCost != 300*10.50 {
		t.Errorf("MXRF11 = %+v, want {300 3150}", mxrf)
	}
}

func TestLedger_Positions_WeightedAverageSell(t *testing.T) {
	// One buy of 100 @ 10 then a sell of 40 @ 15: the sale removes cost at
	// the average price of 10, not at the sale price.
	ledger := NewLedger()
	ledger.Append(
		NewBuy(date.MustParse("2024-01-05"), "XPLG11", 100, 10.0, 0),
		NewSell(date.MustParse("2024-02-05"), "XPLG11", 40, 15.0, 0),
	)

	pos := ledger.Positions()["XPLG11"]
	approx(t, "quantity", pos.Quantity, 60, 1e-9)
	approx(t, "totalCost", pos.TotalCost, 600, 1e-9)
}

func TestLedger_Positions_FullHistory(t *testing.T) {
	// Buy 100 @ 100, buy 50 @ 120, sell 80 @ 150: average cost before the
	// sale is 16000/150, so the sale removes 8533.33 of cost basis.
	ledger := NewLedger()
	ledger.Append(
		NewBuy(date.MustParse("2023-01-01"), "HGLG11", 100, 100.0, 0),
		NewBuy(date.MustParse("2023-06-01"), "HGLG11", 50, 120.0, 0),
		NewSell(date.MustParse("2024-01-01"), "HGLG11", 80, 150.0, 0),
	)

	pos := ledger.Positions()["HGLG11"]
	approx(t, "quantity", pos.Quantity, 70, 1e-9)
	approx(t, "totalCost", pos.TotalCost, 7466.666666, 1e-4)
	approx(t, "averageCost", pos.AverageCost(), 16000.0/150, 1e-9)
}

func TestLedger_Positions_ClosedPositionDisappears(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewBuy(date.MustParse("2024-01-05"), "VISC11", 3, 110.10, 0),
		NewBuy(date.MustParse("2024-01-20"), "VISC11", 7, 112.30, 0),
		NewSell(date.MustParse("2024-03-05"), "VISC11", 10, 115.0, 0),
	)

	if _, ok := ledger.Positions()["VISC11"]; ok {
		t.Error("fully sold position should be absent from the result")
	}
}

func TestLedger_Positions_FloatResidueSnapsToZero(t *testing.T) {
	// Fractional quantities accumulate binary representation error; after
	// selling everything the residue must snap to exactly zero.
	ledger := NewLedger()
	ledger.Append(
		NewBuy(date.MustParse("2024-01-05"), "MXRF11", 0.1, 10.0, 0),
		NewBuy(date.MustParse("2024-01-06"), "MXRF11", 0.2, 10.0, 0),
		NewBuy(date.MustParse("2024-01-07"), "MXRF11", 0.3, 10.0, 0),
		NewSell(date.MustParse("2024-02-01"), "MXRF11", 0.6, 12.0, 0),
	)

	if pos, ok := ledger.Positions()["MXRF11"]; ok {
		t.Errorf("position = %+v, want absent after residue snap", pos)
	}
}

func TestLedger_Positions_OverSellIsClamped(t *testing.T) {
	// Selling more than held is capped at the held quantity, not an error.
	ledger := NewLedger()
	ledger.Append(
		NewBuy(date.MustParse("2024-01-05"), "KNRI11", 10, 150.0, 0),
		NewSell(date.MustParse("2024-02-05"), "KNRI11", 25, 160.0, 0),
	)

	positions := ledger.Positions()
	if pos, ok := positions["KNRI11"]; ok {
		t.Errorf("position = %+v, want absent (clamped full sale)", pos)
	}
	// And never a negative anywhere, even right after the over-sell.
	for ticker, pos := range positions {
		if pos.Quantity < 0 || pos.TotalCost < 0 {
			t.Errorf("position %s = %+v has a negative field", ticker, pos)
		}
	}
}

func TestLedger_Positions_SameDayBuyBeforeSell(t *testing.T) {
	// The sell is appended first but the (date, type) order applies the
	// same-day buy before it, so nothing is clamped away.
	ledger := NewLedger()
	ledger.Append(NewSell(date.MustParse("2024-01-05"), "HGRU11", 10, 130.0, 0))
	ledger.Append(NewBuy(date.MustParse("2024-01-05"), "HGRU11", 10, 125.0, 0))

	if pos, ok := ledger.Positions()["HGRU11"]; ok {
		t.Errorf("position = %+v, want absent (buy applied first, then sold out)", pos)
	}
}

func TestLedger_Positions_NeverNegative(t *testing.T) {
	// A pathological sequence full of over-sells still never yields a
	// negative quantity or cost.
	ledger := NewLedger()
	ledger.Append(
		NewSell(date.MustParse("2024-01-02"), "BTLG11", 50, 100.0, 0),
		NewBuy(date.MustParse("2024-01-03"), "BTLG11", 10, 100.0, 0),
		NewSell(date.MustParse("2024-01-04"), "BTLG11", 100, 90.0, 0),
		NewBuy(date.MustParse("2024-01-05"), "BTLG11", 5, 80.0, 1.5),
		NewSell(date.MustParse("2024-01-06"), "BTLG11", 1, 85.0, 0),
	)

	for ticker, pos := range ledger.Positions() {
		if pos.Quantity < 0 || pos.TotalCost < 0 {
			t.Errorf("position %s = %+v has a negative field", ticker, pos)
		}
	}
}

func TestLedger_PositionsAsOf(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		NewBuy(date.MustParse("2023-01-01"), "HGLG11", 100, 100.0, 0),
		NewBuy(date.MustParse("2023-06-01"), "HGLG11", 50, 120.0, 0),
		NewSell(date.MustParse("2024-01-01"), "HGLG11", 80, 150.0, 0),
	)

	testCases := []struct {
		name         string
		on           string
		wantQuantity float64
	}{
		{name: "before first buy", on: "2022-12-31", wantQuantity: 0},
		{name: "after first buy", on: "2023-01-01", wantQuantity: 100},
		{name: "between buys", on: "2023-05-31", wantQuantity: 100},
		{name: "after second buy", on: "2023-06-01", wantQuantity: 150},
		{name: "after the sell", on: "2024-01-01", wantQuantity: 70},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ledger.PositionsAsOf(date.MustParse(tc.on))["HGLG11"].Quantity
			if got != tc.wantQuantity {
				t.Errorf("quantity as of %s = %v, want %v", tc.on, got, tc.wantQuantity)
			}
		})
	}
}
