package collector

import (
	"context"

	"StockAgent/internal/model"
)

// Fetcher defines the interface for fetching daily price bars.
type Fetcher interface {
	// FetchDailyBars returns daily bars covering the last `days` calendar
	// days for the given symbol, oldest first.
	FetchDailyBars(ctx context.Context, symbol string, days int) ([]model.OHLCV, error)
	Name() string
}
