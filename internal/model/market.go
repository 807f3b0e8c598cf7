package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds one ticker's bars for the analysis window.
// An empty Bars slice means the fetch failed or returned no data;
// downstream consumers treat it as "insufficient data".
type PriceSeries struct {
	Symbol    string
	Bars      []OHLCV
	FetchedAt time.Time
}

// Empty reports whether the series carries no usable bars.
func (p PriceSeries) Empty() bool { return len(p.Bars) == 0 }
