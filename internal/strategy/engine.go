package strategy

import (
	"fmt"
	"log"
	"sort"

	"github.com/shopspring/decimal"

	"StockAgent/internal/model"
)

// Policy controls how matching tickers are turned into the final list.
type Policy struct {
	Mode      string  // "all" keeps every match in input order; "top" ranks by change
	TopN      int     // used when Mode == "top"
	MinChange float64 // inclusion threshold in percent
}

// WindowChange computes the open→close percent change over a series along
// with the entry (first open) and exit (last close) prices, all rounded to
// 2 decimals. Series with fewer than 2 bars yield an error.
func WindowChange(series model.PriceSeries) (change, entry, exit float64, err error) {
	if len(series.Bars) < 2 {
		return 0, 0, 0, fmt.Errorf("insufficient data: %d bar(s)", len(series.Bars))
	}
	open := series.Bars[0].Open
	close := series.Bars[len(series.Bars)-1].Close
	if open == 0 {
		return 0, 0, 0, fmt.Errorf("zero opening price")
	}
	pct := (close - open) / open * 100
	return round2(pct), round2(open), round2(close), nil
}

// Recommend applies the inclusion rule over every ticker: percent change at
// least MinChange AND a positive sentiment label. Tickers with insufficient
// data are skipped with a warning and never abort the batch. Iteration
// follows the given ticker order.
func Recommend(tickers []string, prices map[string]model.PriceSeries, sentiments map[string]model.SentimentReport, pol Policy) []model.Recommendation {
	var recs []model.Recommendation

	for _, ticker := range tickers {
		series, ok := prices[ticker]
		if !ok || series.Empty() {
			log.Printf("[WARN] insufficient data for %s", ticker)
			continue
		}
		change, entry, exit, err := WindowChange(series)
		if err != nil {
			log.Printf("[WARN] insufficient data for %s: %v", ticker, err)
			continue
		}

		rep := sentiments[ticker]
		if change >= pol.MinChange && rep.Label == model.SentimentPositive {
			recs = append(recs, model.Recommendation{
				Ticker:     ticker,
				Change:     change,
				EntryPrice: entry,
				ExitPrice:  exit,
				Sentiment:  rep.Text,
			})
		}
	}

	if pol.Mode == "top" {
		sort.SliceStable(recs, func(i, j int) bool { return recs[i].Change > recs[j].Change })
		if pol.TopN > 0 && len(recs) > pol.TopN {
			recs = recs[:pol.TopN]
		}
	}
	return recs
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
