package collector

import (
	"context"
	"errors"
	"testing"

	"StockAgent/internal/model"
)

func TestCollect_PerTickerFailureIsolation(t *testing.T) {
	fetcher := &MockFetcher{
		Bars: map[string][]model.OHLCV{
			"OK.NS": Bars(100, 106),
		},
		Err: map[string]error{
			"DOWN.NS": errors.New("connection refused"),
		},
	}
	c := NewCollector(fetcher, 7)

	series := c.Collect(context.Background(), []string{"OK.NS", "DOWN.NS", "EMPTY.NS"})

	if len(series) != 3 {
		t.Fatalf("expected all 3 tickers present, got %d", len(series))
	}
	if series["OK.NS"].Empty() {
		t.Error("OK.NS should have bars")
	}
	if !series["DOWN.NS"].Empty() {
		t.Error("failed ticker should carry an empty series")
	}
	if !series["EMPTY.NS"].Empty() {
		t.Error("ticker without data should carry an empty series")
	}
	if series["DOWN.NS"].Symbol != "DOWN.NS" {
		t.Errorf("empty series should keep its symbol, got %q", series["DOWN.NS"].Symbol)
	}
}

func TestCollect_BarsMapped(t *testing.T) {
	fetcher := &MockFetcher{Bars: map[string][]model.OHLCV{"A": Bars(100, 106)}}
	c := NewCollector(fetcher, 7)

	series := c.Collect(context.Background(), []string{"A"})
	bars := series["A"].Bars
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[0].Open != 100 || bars[len(bars)-1].Close != 106 {
		t.Errorf("unexpected window: open=%v close=%v", bars[0].Open, bars[len(bars)-1].Close)
	}
}
