package sentiment

import (
	"testing"

	"StockAgent/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want model.Sentiment
	}{
		{"Strongly positive outlook", model.SentimentPositive},
		{"Positive outlook", model.SentimentPositive},
		{"POSITIVE momentum expected", model.SentimentPositive},
		{"very negative", model.SentimentNegative},
		{"The tone is neutral overall", model.SentimentNeutral},
		{"Sentiment analysis failed.", model.SentimentUnknown},
		{"", model.SentimentUnknown},
		// positive-first: mixed text keeps the label the inclusion rule acts on
		{"positive short term, negative long term", model.SentimentPositive},
	}
	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestParseReply_JSON(t *testing.T) {
	rep := ParseReply(`{"sentiment": "positive", "summary": "Strong quarterly results."}`)
	if rep.Label != model.SentimentPositive {
		t.Errorf("expected positive label, got %s", rep.Label)
	}
	if rep.Text != "Strong quarterly results." {
		t.Errorf("unexpected text: %q", rep.Text)
	}
}

func TestParseReply_FencedJSON(t *testing.T) {
	rep := ParseReply("```json\n{\"sentiment\": \"negative\", \"summary\": \"Regulatory trouble ahead.\"}\n```")
	if rep.Label != model.SentimentNegative {
		t.Errorf("expected negative label, got %s", rep.Label)
	}
	if rep.Text != "Regulatory trouble ahead." {
		t.Errorf("unexpected text: %q", rep.Text)
	}
}

func TestParseReply_RepairedJSON(t *testing.T) {
	// trailing comma survives the repair pass
	rep := ParseReply(`{"sentiment": "neutral", "summary": "Mixed signals this week.",}`)
	if rep.Label != model.SentimentNeutral {
		t.Errorf("expected neutral label, got %s", rep.Label)
	}
}

func TestParseReply_PlainTextFallback(t *testing.T) {
	raw := "The news is broadly positive for the company."
	rep := ParseReply(raw)
	if rep.Label != model.SentimentPositive {
		t.Errorf("expected positive label from raw text, got %s", rep.Label)
	}
	if rep.Text != raw {
		t.Errorf("raw text should be kept verbatim, got %q", rep.Text)
	}
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain JSON unchanged", `{"sentiment":"positive"}`, `{"sentiment":"positive"}`},
		{"strips json fenced block", "```json\n{\"sentiment\":\"positive\"}\n```", `{"sentiment":"positive"}`},
		{"strips plain fenced block", "```\n{\"sentiment\":\"positive\"}\n```", `{"sentiment":"positive"}`},
		{"trims whitespace", "  {\"sentiment\":\"positive\"}  ", `{"sentiment":"positive"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONResponse(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
