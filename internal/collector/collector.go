package collector

import (
	"context"
	"log"
	"time"

	"StockAgent/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars map[string][]model.OHLCV
	Err  map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, symbol string, _ int) ([]model.OHLCV, error) {
	if err, ok := m.Err[symbol]; ok {
		return nil, err
	}
	return m.Bars[symbol], nil
}

// Bars builds a two-bar series opening at open and closing at close,
// ending yesterday. Handy for wiring up mock watchlists.
func Bars(open, close float64) []model.OHLCV {
	now := time.Now()
	return []model.OHLCV{
		{Time: now.AddDate(0, 0, -6), Open: open, High: open * 1.01, Low: open * 0.99, Close: open, Volume: 1000000},
		{Time: now.AddDate(0, 0, -1), Open: close * 0.99, High: close * 1.01, Low: close * 0.98, Close: close, Volume: 1000000},
	}
}

// Collector fetches the price window for every watched ticker.
type Collector struct {
	Fetcher    Fetcher
	WindowDays int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, windowDays int) *Collector {
	return &Collector{Fetcher: fetcher, WindowDays: windowDays}
}

// Collect fetches a price series per ticker. A per-ticker failure or empty
// result never aborts the batch: the ticker is kept with an empty series
// and a warning is logged.
func (c *Collector) Collect(ctx context.Context, tickers []string) map[string]model.PriceSeries {
	series := make(map[string]model.PriceSeries, len(tickers))
	for _, ticker := range tickers {
		bars, err := c.Fetcher.FetchDailyBars(ctx, ticker, c.WindowDays)
		if err != nil {
			log.Printf("[ERROR] fetch price data for %s: %v", ticker, err)
			series[ticker] = model.PriceSeries{Symbol: ticker, FetchedAt: time.Now()}
			continue
		}
		if len(bars) == 0 {
			log.Printf("[WARN] no price data for %s", ticker)
		}
		series[ticker] = model.PriceSeries{Symbol: ticker, Bars: bars, FetchedAt: time.Now()}
	}
	return series
}
