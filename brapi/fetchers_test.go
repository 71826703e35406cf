package brapi

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/rvaz/carteira"
	"github.com/rvaz/carteira/date"
)

// A trimmed real-world quote payload for a logistics fund.
const quoteFixture = `{
  "results": [
    {
      "symbol": "HGLG11",
      "shortName": "FII CSHG LOGCI",
      "longName": "CSHG Logística FII",
      "currency": "BRL",
      "regularMarketPrice": 160.55,
      "historicalDataPrice": [
        {"date": 1704891600, "close": 158.3},
        {"date": 1704978000, "close": null},
        {"date": 1705064400, "close": 159.9}
      ],
      "dividendsData": {
        "cashDividends": [
          {
            "assetIssued": "BRHGLGCTF004",
            "paymentDate": "2024-02-14T13:00:00.000Z",
            "rate": 1.1,
            "relatedTo": "Janeiro/2024",
            "label": "RENDIMENTO",
            "lastDatePrior": "2024-01-31T13:00:00.000Z"
          },
          {
            "paymentDate": "",
            "rate": 1.15,
            "relatedTo": "Fevereiro/2024",
            "label": "RENDIMENTO",
            "lastDatePrior": "2024-02-29T13:00:00.000Z"
          }
        ]
      },
      "defaultKeyStatistics": {
        "dividendYield": 8.42,
        "priceToBook": 0.97
      }
    }
  ]
}`

func TestApply(t *testing.T) {
	var payload quotePayload
	if err := json.Unmarshal([]byte(quoteFixture), &payload); err != nil {
		t.Fatal(err)
	}
	if len(payload.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(payload.Results))
	}

	asset := carteira.NewAsset("HGLG11")
	apply(asset, &payload.Results[0])

	if asset.Name != "CSHG Logística FII" {
		t.Errorf("Name = %q", asset.Name)
	}
	if asset.Price != 160.55 {
		t.Errorf("Price = %v, want 160.55", asset.Price)
	}
	if asset.DY == nil || *asset.DY != 8.42 {
		t.Errorf("DY = %v, want 8.42", asset.DY)
	}
	if asset.PVP == nil || *asset.PVP != 0.97 {
		t.Errorf("PVP = %v, want 0.97", asset.PVP)
	}

	// Two historical closes plus today's regular market price; the null
	// close is dropped.
	if got := len(asset.PriceDays()); got != 3 {
		t.Errorf("got %d price days, want 3: %v", got, asset.PriceDays())
	}
	if price, ok := asset.PriceOn(date.MustParse("2024-01-10")); !ok || price != 158.3 {
		t.Errorf("PriceOn(2024-01-10) = %v, %v", price, ok)
	}

	divs := asset.Dividends()
	if len(divs) != 2 {
		t.Fatalf("got %d dividends, want 2: %v", len(divs), divs)
	}
	paid := divs[0]
	if paid.ExDate != date.MustParse("2024-01-31") || paid.PaymentDate != date.MustParse("2024-02-14") {
		t.Errorf("paid event dates = %v / %v", paid.ExDate, paid.PaymentDate)
	}
	if paid.Value != 1.1 || paid.Provisioned {
		t.Errorf("paid event = %+v", paid)
	}
	unannounced := divs[1]
	if !unannounced.Provisioned {
		t.Error("event without a payment date should be provisioned")
	}
	if unannounced.PaymentDate != unannounced.ExDate {
		t.Errorf("unannounced payment bucketed on %v, want the ex-date %v",
			unannounced.PaymentDate, unannounced.ExDate)
	}
}

func TestApply_RepeatedSyncOverwrites(t *testing.T) {
	var payload quotePayload
	if err := json.Unmarshal([]byte(quoteFixture), &payload); err != nil {
		t.Fatal(err)
	}

	asset := carteira.NewAsset("HGLG11")
	apply(asset, &payload.Results[0])
	before := len(asset.PriceDays())
	apply(asset, &payload.Results[0])

	if got := len(asset.PriceDays()); got != before {
		t.Errorf("second apply grew the history: %d -> %d price days", before, got)
	}
	if got := len(asset.Dividends()); got != 2 {
		t.Errorf("second apply duplicated dividends: %d events", got)
	}
}

func TestParseAPIDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2024-01-31T13:00:00.000Z", want: "2024-01-31"},
		{in: "2024-01-31T00:00:00Z", want: "2024-01-31"},
		{in: "31/01/2024", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := parseAPIDate(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseAPIDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != date.MustParse(tc.want) {
			t.Errorf("parseAPIDate(%q) = %v, want %s", tc.in, got, tc.want)
		}
	}
}

func Test_fetchQuote(t *testing.T) {
	token := os.Getenv(TokenEnvVar)
	if token == "" {
		t.Skipf("set %s to run tests against the live API", TokenEnvVar)
	}
	res, err := fetchQuote(token, "HGLG11")
	if err != nil {
		t.Fatalf("fetchQuote() unexpected error = %v", err)
	}
	if res.Symbol != "HGLG11" {
		t.Errorf("Symbol = %q, want HGLG11", res.Symbol)
	}
	if res.RegularMarketPrice.IsZero() {
		t.Error("fetchQuote() returned a zero price")
	}
}
