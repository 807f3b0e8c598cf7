package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Headline is one article returned by the news provider.
type Headline struct {
	Title       string
	Description string
}

// Client fetches business headlines from the newsdata.io API.
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

// NewClient creates a newsdata.io client with optional proxy support.
func NewClient(apiKey, proxyURL string) *Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: "https://newsdata.io/api/1/news",
		HTTP: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
	}
}

type newsResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"results"`
}

// FetchHeadlines queries Indian business news for the given stock name and
// returns at most `limit` headlines. An empty slice with a nil error means
// the provider answered successfully but found nothing.
func (c *Client) FetchHeadlines(ctx context.Context, stockName string, limit int) ([]Headline, error) {
	q := url.Values{}
	q.Set("apikey", c.APIKey)
	q.Set("q", stockName)
	q.Set("country", "in")
	q.Set("language", "en")
	q.Set("category", "business")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsdata fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("newsdata read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsdata: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed newsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("newsdata decode: %w", err)
	}
	if parsed.Status != "success" {
		return nil, fmt.Errorf("newsdata: status %q", parsed.Status)
	}

	headlines := make([]Headline, 0, limit)
	for i, r := range parsed.Results {
		if i >= limit {
			break
		}
		headlines = append(headlines, Headline{Title: r.Title, Description: r.Description})
	}
	return headlines, nil
}
