package agent

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"

	"StockAgent/internal/collector"
	"StockAgent/internal/model"
	"StockAgent/internal/news"
	"StockAgent/internal/notifier"
	"StockAgent/internal/recorder"
	"StockAgent/internal/strategy"
)

const newsLimit = 5

// NewsFetcher is the news-provider boundary.
type NewsFetcher interface {
	FetchHeadlines(ctx context.Context, stockName string, limit int) ([]news.Headline, error)
}

// SentimentAnalyzer is the language-model boundary.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, stockName, newsText string) (model.SentimentReport, error)
}

// Store is the recommendation persistence boundary.
type Store interface {
	Append(recs []model.Recommendation) error
}

// Agent runs one full analysis pass: prices, news, sentiment,
// recommendations, persistence, email, console. Every step failure is
// logged and degrades that step only; a run always completes.
type Agent struct {
	Tickers   []string
	Collector *collector.Collector
	News      NewsFetcher
	Sentiment SentimentAnalyzer
	Store     Store
	Mailer    notifier.Mailer
	Recorder  recorder.Recorder
	Policy    strategy.Policy
	Out       io.Writer // console output; defaults to stdout
}

// Run executes the pipeline once and returns the run summary.
func (a *Agent) Run(ctx context.Context) *model.RunSummary {
	out := a.Out
	if out == nil {
		out = os.Stdout
	}
	runID := uuid.NewString()
	log.Printf("[INFO] run %s: starting weekly stock agent for %d tickers", runID, len(a.Tickers))

	prices := a.Collector.Collect(ctx, a.Tickers)

	sentiments := make(map[string]model.SentimentReport, len(a.Tickers))
	for _, ticker := range a.Tickers {
		newsText := a.fetchNewsText(ctx, ticker)
		rep, err := a.Sentiment.Analyze(ctx, ticker, newsText)
		if err != nil {
			log.Printf("[ERROR] analyze sentiment for %s: %v", ticker, err)
		}
		sentiments[ticker] = rep
	}

	recs := strategy.Recommend(a.Tickers, prices, sentiments, a.Policy)
	log.Printf("[INFO] run %s: %d recommendation(s)", runID, len(recs))

	storeOK := true
	if err := a.Store.Append(recs); err != nil {
		storeOK = false
		log.Printf("[ERROR] store recommendations: %v", err)
	}

	body := notifier.FormatReport(recs, a.Tickers, prices, sentiments)
	emailSent := true
	if err := a.Mailer.Send(notifier.Subject, body); err != nil {
		emailSent = false
		log.Printf("[ERROR] send email report: %v", err)
		fmt.Fprintln(out, "❌ Failed to send email.")
	} else {
		log.Println("[INFO] email report sent")
		fmt.Fprintln(out, "📧 Email sent.")
	}

	for _, rec := range recs {
		fmt.Fprint(out, notifier.FormatConsole(rec))
	}

	sum := &model.RunSummary{
		RunID:           runID,
		Tickers:         len(a.Tickers),
		Analyzed:        countAnalyzed(prices),
		Recommendations: len(recs),
		EmailSent:       emailSent,
		StoreOK:         storeOK,
	}
	if err := a.Recorder.RecordRun(sum); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	if err := a.Recorder.RecordRecommendations(runID, recs); err != nil {
		log.Printf("[ERROR] record recommendations: %v", err)
	}

	log.Printf("[INFO] run %s: complete", runID)
	return sum
}

// fetchNewsText renders the headline digest fed to the sentiment prompt,
// falling back to fixed sentinel strings on failure or empty results.
func (a *Agent) fetchNewsText(ctx context.Context, ticker string) string {
	log.Printf("[INFO] fetching news for %s", ticker)
	headlines, err := a.News.FetchHeadlines(ctx, ticker, newsLimit)
	if err != nil {
		log.Printf("[ERROR] fetch news for %s: %v", ticker, err)
		return news.ErrorText(ticker, err)
	}
	if len(headlines) == 0 {
		log.Printf("[WARN] no news articles found for %s", ticker)
		return news.NotFoundText(ticker)
	}
	return news.Render(headlines)
}

func countAnalyzed(prices map[string]model.PriceSeries) int {
	n := 0
	for _, s := range prices {
		if len(s.Bars) >= 2 {
			n++
		}
	}
	return n
}
