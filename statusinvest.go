package carteira

import (
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/rvaz/carteira/date"
)

/*
	The statusinvest intraday endpoint returns a nested chart payload:

	{
	    "HGLG11": [
	        {
	            "prices": [
	                {"price": 160.50, "date": "29/08/26 10:00"},
	                ...
	            ],
	            ...
	        }
	    ]
	}
*/

// statusinvestLatest fetches the latest traded price for a B3 ticker from the
// statusinvest intraday chart payload.
func statusinvestLatest(ticker string) (float64, error) {
	addr := "https://statusinvest.com.br/fii/tickerprice?ticker=" + ticker + "&type=-1"
	var jobj any
	if err := JSONGet(new(http.Client), addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error retrieving %q: %w", ticker, err)
	}
	// The last element of the prices array is the most recent trade.
	path := fmt.Sprintf("$.%s[0].prices[-1:].price", ticker)
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", ticker, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q not a float: %v", ticker, path, jval)
	}
	return val, nil
}

// UpdateIntraday refreshes every asset's latest price from the intraday
// feed. Assets the feed does not know are left untouched; errors are joined
// so one bad ticker does not stop the others.
func (m *MarketData) UpdateIntraday() error {
	var errs error
	for asset := range m.All() {
		latest, err := statusinvestLatest(asset.Ticker)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not get intraday for %s: %w", asset.Ticker, err))
			continue
		}
		if latest > 0 {
			asset.Price = latest
			asset.AppendPrice(date.Today(), latest)
		}
	}
	return errs
}
