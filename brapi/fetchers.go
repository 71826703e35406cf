package brapi

import (
	"fmt"
	"net/url"
	"time"

	"github.com/rvaz/carteira/date"
	"github.com/shopspring/decimal"
)

// This file contains functions to access the brapi.dev API.

// quoteResult is one entry of the /api/quote payload.
//
// Prices come in as decimals: brapi relays the raw exchange figures and a
// float json decode would bake representation noise into the cache files.
type quoteResult struct {
	Symbol             string          `json:"symbol"`
	ShortName          string          `json:"shortName"`
	LongName           string          `json:"longName"`
	Currency           string          `json:"currency"`
	RegularMarketPrice decimal.Decimal `json:"regularMarketPrice"`

	HistoricalDataPrice []historicalPrice `json:"historicalDataPrice"`
	DividendsData       dividendsData     `json:"dividendsData"`

	// requires the defaultKeyStatistics module
	DefaultKeyStatistics *keyStatistics `json:"defaultKeyStatistics"`
}

type historicalPrice struct {
	Date  int64            `json:"date"` // unix seconds
	Close *decimal.Decimal `json:"close"`
}

type dividendsData struct {
	CashDividends []cashDividend `json:"cashDividends"`
}

// cashDividend is one distribution in brapi's calendar.
//
//	{
//	    "assetIssued": "BRHGLGCTF004",
//	    "paymentDate": "2024-02-14T13:00:00.000Z",
//	    "rate": 1.1,
//	    "relatedTo": "Janeiro/2024",
//	    "label": "RENDIMENTO",
//	    "lastDatePrior": "2024-01-31T13:00:00.000Z"
//	}
type cashDividend struct {
	PaymentDate   string          `json:"paymentDate"`
	Rate          decimal.Decimal `json:"rate"`
	RelatedTo     string          `json:"relatedTo"`
	Label         string          `json:"label"`
	LastDatePrior string          `json:"lastDatePrior"` // the ex-date
}

type keyStatistics struct {
	DividendYield *decimal.Decimal `json:"dividendYield"` // in percent
	PriceToBook   *decimal.Decimal `json:"priceToBook"`
}

type quotePayload struct {
	Results []quoteResult `json:"results"`
	Error   bool          `json:"error"`
	Message string        `json:"message"`
}

// fetchQuote retrieves the full quote for one ticker: latest price, a year of
// daily closes, the dividend calendar and the fundamentals.
func fetchQuote(token, ticker string) (*quoteResult, error) {
	q := url.Values{}
	q.Set("token", token)
	q.Set("range", "1y")
	q.Set("interval", "1d")
	q.Set("dividends", "true")
	q.Set("fundamental", "true")
	q.Set("modules", "defaultKeyStatistics")
	addr := fmt.Sprintf("%s/quote/%s?%s", baseURL, url.PathEscape(ticker), q.Encode())

	var payload quotePayload
	if err := jwget(newDailyCachingClient(), addr, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", ticker, err)
	}
	if payload.Error {
		return nil, fmt.Errorf("brapi error for %s: %s", ticker, payload.Message)
	}
	if len(payload.Results) == 0 {
		return nil, fmt.Errorf("ticker %s not found on brapi", ticker)
	}
	return &payload.Results[0], nil
}

// parseAPIDate converts brapi's RFC 3339 timestamps into a calendar day.
func parseAPIDate(s string) (date.Date, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid brapi date %q: %w", s, err)
	}
	return date.New(t.Year(), t.Month(), t.Day()), nil
}

// epochDay converts a unix-seconds timestamp into a calendar day.
func epochDay(sec int64) date.Date {
	t := time.Unix(sec, 0).UTC()
	return date.New(t.Year(), t.Month(), t.Day())
}
