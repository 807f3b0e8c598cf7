package notifier

import (
	"fmt"
	"log"
	"strings"

	"StockAgent/internal/model"
	"StockAgent/internal/strategy"
)

// NoPicksBody is the fixed body line used when no ticker passed the rule.
const NoPicksBody = "No stock recommendations this week."

// FormatReport builds the email body: one block per recommendation (or the
// fixed no-picks line), always followed by a fixed-width summary table over
// every analyzed ticker. Rows whose change cannot be computed are skipped
// with a warning, not blank-filled.
func FormatReport(recs []model.Recommendation, tickers []string, prices map[string]model.PriceSeries, sentiments map[string]model.SentimentReport) string {
	var b strings.Builder

	if len(recs) == 0 {
		b.WriteString(NoPicksBody)
	} else {
		b.WriteString("📊 Weekly Stock Recommendations:\n\n")
		for _, rec := range recs {
			b.WriteString(fmt.Sprintf("📈 %s\n", rec.Ticker))
			b.WriteString(fmt.Sprintf(" - Sentiment: %s\n", rec.Sentiment))
			b.WriteString(fmt.Sprintf(" - Change: %.2f%%\n", rec.Change))
			b.WriteString(fmt.Sprintf(" - Entry Price: ₹%.2f\n", rec.EntryPrice))
			b.WriteString(fmt.Sprintf(" - Exit Price: ₹%.2f\n\n", rec.ExitPrice))
		}
	}

	b.WriteString("\n📋 Summary of All Analyzed Stocks:\n")
	b.WriteString(fmt.Sprintf("%-12s %-10s %-15s\n", "Ticker", "% Change", "Sentiment"))
	b.WriteString(strings.Repeat("-", 42) + "\n")

	for _, ticker := range tickers {
		series, ok := prices[ticker]
		if !ok {
			log.Printf("[WARN] could not calculate summary for %s: no price data", ticker)
			continue
		}
		change, _, _, err := strategy.WindowChange(series)
		if err != nil {
			log.Printf("[WARN] could not calculate summary for %s: %v", ticker, err)
			continue
		}
		sentiment := "N/A"
		if rep, ok := sentiments[ticker]; ok && rep.Text != "" {
			sentiment = rep.Text
		}
		b.WriteString(fmt.Sprintf("%-12s %-10s %-15s\n", ticker, fmt.Sprintf("%.2f%%", change), truncate(sentiment, 50)))
	}

	return b.String()
}

// FormatConsole renders one recommendation for the console print at the end
// of a run.
func FormatConsole(rec model.Recommendation) string {
	return fmt.Sprintf("\n📈 %s Recommendation:\nChange: %.2f%%\nEntry Price: ₹%.2f\nExit Price: ₹%.2f\nSentiment: %s\n",
		rec.Ticker, rec.Change, rec.EntryPrice, rec.ExitPrice, rec.Sentiment)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
