package news

import (
	"fmt"
	"strings"
)

// Render formats headlines the way they are fed to the sentiment prompt:
// "{i}. {title} - {description}" joined by blank lines.
func Render(headlines []Headline) string {
	lines := make([]string, 0, len(headlines))
	for i, h := range headlines {
		lines = append(lines, fmt.Sprintf("%d. %s - %s", i+1, h.Title, h.Description))
	}
	return strings.Join(lines, "\n\n")
}

// NotFoundText is the text used when the provider answered but had no
// articles for the stock.
func NotFoundText(stockName string) string {
	return fmt.Sprintf("No news articles found for %s.", stockName)
}

// ErrorText is the text used when the news fetch itself failed.
func ErrorText(stockName string, err error) string {
	return fmt.Sprintf("Error fetching news for %s: %v", stockName, err)
}
