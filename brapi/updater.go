package brapi

import (
	"errors"
	"fmt"
	"log"

	"github.com/rvaz/carteira"
	"github.com/rvaz/carteira/date"
)

// Sync refreshes the market data snapshots for the given tickers from
// brapi.dev: latest price, fundamentals, daily price history and the dividend
// calendar. Unknown tickers get a fresh snapshot; existing ones are updated
// in place, so history accumulates across runs beyond the vendor's one-year
// window.
//
// Errors are joined per ticker: one delisted fund does not stop the rest of
// the sync.
func Sync(token string, market *carteira.MarketData, tickers []string) error {
	token, err := Token(token)
	if err != nil {
		return err
	}

	var errs error
	for _, ticker := range tickers {
		res, err := fetchQuote(token, ticker)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("could not sync %s: %w", ticker, err))
			continue
		}
		asset := market.Get(ticker)
		if asset == nil {
			asset = carteira.NewAsset(ticker)
			market.Add(asset)
		}
		apply(asset, res)
	}
	return errs
}

// apply maps one quote payload onto an asset snapshot.
func apply(asset *carteira.Asset, res *quoteResult) {
	if name := res.LongName; name != "" {
		asset.Name = name
	} else if res.ShortName != "" {
		asset.Name = res.ShortName
	}
	if price := res.RegularMarketPrice.InexactFloat64(); price > 0 {
		asset.Price = price
		asset.AppendPrice(date.Today(), price)
	}

	if ks := res.DefaultKeyStatistics; ks != nil {
		if ks.DividendYield != nil {
			dy := ks.DividendYield.InexactFloat64()
			asset.DY = &dy
		}
		if ks.PriceToBook != nil {
			pvp := ks.PriceToBook.InexactFloat64()
			asset.PVP = &pvp
		}
	}

	for _, p := range res.HistoricalDataPrice {
		// Halted days come through with a null close.
		if p.Close == nil {
			continue
		}
		if close := p.Close.InexactFloat64(); close > 0 {
			asset.AppendPrice(epochDay(p.Date), close)
		}
	}

	today := date.Today()
	for _, div := range res.DividendsData.CashDividends {
		ev, err := dividendEvent(div, today)
		if err != nil {
			log.Printf("skipping %s dividend: %v", asset.Ticker, err)
			continue
		}
		asset.AppendDividend(ev)
	}
}

// dividendEvent converts one brapi cash dividend into a domain event. The
// vendor's lastDatePrior is the ex-date. An event whose payment has not
// happened yet, or whose payment date is still unannounced, is provisioned.
func dividendEvent(div cashDividend, today date.Date) (carteira.DividendEvent, error) {
	exDate, err := parseAPIDate(div.LastDatePrior)
	if err != nil {
		return carteira.DividendEvent{}, err
	}
	ev := carteira.DividendEvent{
		ExDate: exDate,
		Value:  div.Rate.InexactFloat64(),
	}
	if div.PaymentDate == "" {
		// Payment date not announced yet: bucket by the ex-date month until
		// the vendor publishes the real one.
		ev.PaymentDate = exDate
		ev.Provisioned = true
		return ev, nil
	}
	payment, err := parseAPIDate(div.PaymentDate)
	if err != nil {
		return carteira.DividendEvent{}, err
	}
	ev.PaymentDate = payment
	ev.Provisioned = payment.After(today)
	return ev, nil
}
