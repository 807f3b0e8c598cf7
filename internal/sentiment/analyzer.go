package sentiment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"StockAgent/internal/model"
)

// FailureText is returned verbatim on any provider error. It maps to the
// unknown label and therefore can never produce a recommendation.
const FailureText = "Sentiment analysis failed."

const systemPrompt = `You are a financial assistant specialized in stock sentiment analysis.

Given recent news about a stock, judge the overall tone for investors.

Output as JSON only, no other text:
{
  "sentiment": "positive" | "neutral" | "negative",
  "summary": "one or two sentences explaining the judgment"
}`

// Analyzer asks an OpenAI chat model for a sentiment judgment per ticker.
type Analyzer struct {
	client *openai.Client
	model  openai.ChatModel
}

// NewAnalyzer creates an analyzer using the given API key and model name.
func NewAnalyzer(apiKey, modelName string) *Analyzer {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Analyzer{
		client: &client,
		model:  openai.ChatModel(modelName),
	}
}

// Analyze sends one completion request for the stock's news and returns the
// judgment. On provider error the report text is exactly FailureText and the
// label is unknown; the error is also returned for the caller's log.
func (a *Analyzer) Analyze(ctx context.Context, stockName, newsText string) (model.SentimentReport, error) {
	userPrompt := fmt.Sprintf("Analyze the sentiment of the following news related to %s:\n\n%s", stockName, newsText)

	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: a.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return model.SentimentReport{Label: model.SentimentUnknown, Text: FailureText},
			fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return model.SentimentReport{Label: model.SentimentUnknown, Text: FailureText},
			fmt.Errorf("no response from openai")
	}

	return ParseReply(resp.Choices[0].Message.Content), nil
}

// ParseReply turns the raw model reply into a report. Structured JSON is
// preferred; a broken reply goes through jsonrepair; anything still
// unparseable falls back to Classify over the raw text.
func ParseReply(raw string) model.SentimentReport {
	content := cleanJSONResponse(raw)

	var parsed struct {
		Sentiment string `json:"sentiment"`
		Summary   string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		repaired, rerr := jsonrepair.JSONRepair(content)
		if rerr != nil || json.Unmarshal([]byte(repaired), &parsed) != nil {
			log.Printf("[WARN] unstructured sentiment reply, classifying raw text")
			text := strings.TrimSpace(raw)
			return model.SentimentReport{Label: Classify(text), Text: text}
		}
	}

	text := strings.TrimSpace(parsed.Summary)
	if text == "" {
		text = strings.TrimSpace(raw)
	}
	label := Classify(parsed.Sentiment)
	if label == model.SentimentUnknown {
		label = Classify(text)
	}
	return model.SentimentReport{Label: label, Text: text}
}

// Classify maps free text to a sentiment label. The mapping is checked
// positive-first so that any text containing "positive" keeps the label
// that the inclusion rule acts on.
func Classify(text string) model.Sentiment {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "positive"):
		return model.SentimentPositive
	case strings.Contains(lower, "negative"):
		return model.SentimentNegative
	case strings.Contains(lower, "neutral"):
		return model.SentimentNeutral
	default:
		return model.SentimentUnknown
	}
}

// cleanJSONResponse strips markdown code fences some models wrap around
// JSON replies.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
