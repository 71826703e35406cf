package carteira

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// reportingCurrency is the currency every report is expressed in. The ledger
// is single-currency: B3 trades and distributions settle in BRL.
const reportingCurrency = "BRL"

// BRL formats a monetary value for display, e.g. "R$1.234,56".
func BRL(value float64) string {
	cur := money.GetCurrency(reportingCurrency)
	// go-money formats from the minor unit; shift through decimal to avoid
	// the usual *100 float truncation surprises.
	minor := decimal.NewFromFloat(value).Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), reportingCurrency).Display()
}

// Percent formats a ratio already expressed in percent, e.g. "8,25%".
func Percent(value float64) string {
	s := fmt.Sprintf("%.2f%%", value)
	// B3 reports use the decimal comma.
	return strings.Replace(s, ".", ",", 1)
}
