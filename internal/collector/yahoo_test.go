package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestYahooFetchDailyBars(t *testing.T) {
	now := time.Now()
	ts1 := now.AddDate(0, 0, -5).Unix()
	ts2 := now.AddDate(0, 0, -1).Unix()
	tsOld := now.AddDate(0, 0, -20).Unix()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"chart":{"result":[{
			"timestamp":[%d,%d,%d,%d],
			"indicators":{"quote":[{
				"open":[95,100,null,105.5],
				"high":[96,101,null,107],
				"low":[94,99,null,104],
				"close":[95.5,100.5,null,106],
				"volume":[1000,2000,null,3000]
			}]}
		}],"error":null}}`, tsOld, ts1, ts1+3600, ts2)
	}))
	defer srv.Close()

	f := &YahooFetcher{Client: srv.Client(), BaseURL: srv.URL}
	bars, err := f.FetchDailyBars(context.Background(), "RELIANCE.NS", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// old bar trimmed by window, null bar skipped
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[0].Open != 100 || bars[1].Close != 106 {
		t.Errorf("unexpected bars: %+v", bars)
	}
	if !bars[0].Time.Before(bars[1].Time) {
		t.Error("bars should be sorted oldest first")
	}
}

func TestYahooFetchDailyBars_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[],"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`))
	}))
	defer srv.Close()

	f := &YahooFetcher{Client: srv.Client(), BaseURL: srv.URL}
	if _, err := f.FetchDailyBars(context.Background(), "BOGUS.NS", 7); err == nil {
		t.Error("expected error for API error payload")
	}
}

func TestYahooFetchDailyBars_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := &YahooFetcher{Client: srv.Client(), BaseURL: srv.URL}
	if _, err := f.FetchDailyBars(context.Background(), "RELIANCE.NS", 7); err == nil {
		t.Error("expected error for HTTP 429")
	}
}
