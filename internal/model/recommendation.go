package model

import "fmt"

// Sentiment is the normalized news-tone classification for a ticker.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
	SentimentUnknown  Sentiment = "unknown"
)

// SentimentReport carries the model's judgment for one ticker: the
// normalized label used by the inclusion rule and the raw text shown
// in reports.
type SentimentReport struct {
	Label Sentiment
	Text  string
}

// Recommendation is a ticker that passed the inclusion rule, with its
// supporting price and sentiment data. Immutable once created.
type Recommendation struct {
	Ticker     string
	Change     float64 // percent change open→close, rounded to 2 decimals
	EntryPrice float64
	ExitPrice  float64
	Sentiment  string
}

// String renders the record the way it is persisted and logged.
func (r Recommendation) String() string {
	return fmt.Sprintf("{ticker: %s, change: %.2f%%, entry: %.2f, exit: %.2f, sentiment: %s}",
		r.Ticker, r.Change, r.EntryPrice, r.ExitPrice, r.Sentiment)
}

// RunSummary is a per-run snapshot handed to the recorder.
type RunSummary struct {
	RunID           string
	Tickers         int
	Analyzed        int
	Recommendations int
	EmailSent       bool
	StoreOK         bool
}
