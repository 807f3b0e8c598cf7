package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if len(cfg.Tickers) != 5 || cfg.Tickers[0] != "RELIANCE.NS" {
		t.Errorf("unexpected default tickers: %v", cfg.Tickers)
	}
	if cfg.DataSource.Provider != "yahoo" || cfg.DataSource.WindowDays != 7 {
		t.Errorf("unexpected data source defaults: %+v", cfg.DataSource)
	}
	if cfg.Recommend.Policy != "all" || cfg.Recommend.TopN != 2 || cfg.Recommend.MinChange != 5.0 {
		t.Errorf("unexpected recommend defaults: %+v", cfg.Recommend)
	}
	if cfg.Schedule.Timezone != "Asia/Kolkata" {
		t.Errorf("unexpected timezone: %s", cfg.Schedule.Timezone)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("unexpected model: %s", cfg.OpenAI.Model)
	}
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
tickers: [HDFCBANK.NS]
news:
  api_key: yaml-key
recommend:
  policy: top
`)
	t.Setenv("NEWSDATA_API_KEY", "env-key")
	t.Setenv("TICKERS", "SBIN.NS, ICICIBANK.NS")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.News.APIKey != "env-key" {
		t.Errorf("env should override yaml, got %q", cfg.News.APIKey)
	}
	if len(cfg.Tickers) != 2 || cfg.Tickers[0] != "SBIN.NS" || cfg.Tickers[1] != "ICICIBANK.NS" {
		t.Errorf("unexpected tickers: %v", cfg.Tickers)
	}
	if cfg.Recommend.Policy != "top" {
		t.Errorf("unexpected policy: %s", cfg.Recommend.Policy)
	}
}

func validConfig() *Config {
	cfg := &Config{}
	cfg.Tickers = []string{"RELIANCE.NS"}
	cfg.News.APIKey = "n"
	cfg.OpenAI.APIKey = "o"
	cfg.Email.Username = "u"
	cfg.Email.Password = "p"
	cfg.DataSource.Provider = "yahoo"
	cfg.Recommend.Policy = "all"
	return cfg
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing news key", func(c *Config) { c.News.APIKey = "" }},
		{"missing openai key", func(c *Config) { c.OpenAI.APIKey = "" }},
		{"missing email creds", func(c *Config) { c.Email.Password = "" }},
		{"alpaca without keys", func(c *Config) { c.DataSource.Provider = "alpaca" }},
		{"bad policy", func(c *Config) { c.Recommend.Policy = "best" }},
		{"no tickers", func(c *Config) { c.Tickers = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
