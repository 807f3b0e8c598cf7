package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration. Components receive the
// sections they need; nothing reads the environment after Load returns.
type Config struct {
	Tickers    []string `yaml:"tickers"`
	DataSource struct {
		Provider     string `yaml:"provider"` // "yahoo" or "alpaca"
		AlpacaKey    string `yaml:"alpaca_key"`
		AlpacaSecret string `yaml:"alpaca_secret"`
		WindowDays   int    `yaml:"window_days"`
	} `yaml:"data_source"`
	News struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"news"`
	OpenAI struct {
		APIKey string `yaml:"api_key"`
		Model  string `yaml:"model"`
	} `yaml:"openai"`
	Email struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		To       string `yaml:"to"`
	} `yaml:"email"`
	Recommend struct {
		Policy    string  `yaml:"policy"` // "all" or "top"
		TopN      int     `yaml:"top_n"`
		MinChange float64 `yaml:"min_change"`
	} `yaml:"recommend"`
	Schedule struct {
		WeeklyCron string `yaml:"weekly_cron"`
		Timezone   string `yaml:"timezone"`
	} `yaml:"schedule"`
	Files struct {
		Recommendations string `yaml:"recommendations"`
		Feedback        string `yaml:"feedback"`
		LogDir          string `yaml:"log_dir"`
	} `yaml:"files"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TICKERS"); v != "" {
		cfg.Tickers = splitList(v)
	}
	if v := os.Getenv("NEWSDATA_API_KEY"); v != "" {
		cfg.News.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("ALPACA_API_KEY"); v != "" {
		cfg.DataSource.AlpacaKey = v
	}
	if v := os.Getenv("ALPACA_SECRET_KEY"); v != "" {
		cfg.DataSource.AlpacaSecret = v
	}
	if v := os.Getenv("EMAIL_USER"); v != "" {
		cfg.Email.Username = v
	}
	if v := os.Getenv("EMAIL_PASS"); v != "" {
		cfg.Email.Password = v
	}
	if v := os.Getenv("EMAIL_TO"); v != "" {
		cfg.Email.To = v
	}
	if v := os.Getenv("CRON_WEEKLY"); v != "" {
		cfg.Schedule.WeeklyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Recommend.TopN = n
		}
	}

	// Defaults
	if len(cfg.Tickers) == 0 {
		cfg.Tickers = []string{"RELIANCE.NS", "TCS.NS", "INFY.NS", "AXISBANK.NS", "SBIN.NS"}
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.DataSource.WindowDays == 0 {
		cfg.DataSource.WindowDays = 7
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-4o"
	}
	if cfg.Email.Host == "" {
		cfg.Email.Host = "smtp.gmail.com"
	}
	if cfg.Email.Port == 0 {
		cfg.Email.Port = 587
	}
	if cfg.Email.To == "" {
		cfg.Email.To = cfg.Email.Username
	}
	if cfg.Recommend.Policy == "" {
		cfg.Recommend.Policy = "all"
	}
	if cfg.Recommend.TopN == 0 {
		cfg.Recommend.TopN = 2
	}
	if cfg.Recommend.MinChange == 0 {
		cfg.Recommend.MinChange = 5.0
	}
	if cfg.Schedule.WeeklyCron == "" {
		// Monday 10:00 in the configured timezone
		cfg.Schedule.WeeklyCron = "0 0 10 * * 1"
	}
	if cfg.Schedule.Timezone == "" {
		cfg.Schedule.Timezone = "Asia/Kolkata"
	}
	if cfg.Files.Recommendations == "" {
		cfg.Files.Recommendations = "recommendations.txt"
	}
	if cfg.Files.Feedback == "" {
		cfg.Files.Feedback = "feedback.txt"
	}
	if cfg.Files.LogDir == "" {
		cfg.Files.LogDir = "logs"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers is required")
	}
	if c.News.APIKey == "" {
		return fmt.Errorf("news.api_key is required (NEWSDATA_API_KEY)")
	}
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required (OPENAI_API_KEY)")
	}
	if c.Email.Username == "" || c.Email.Password == "" {
		return fmt.Errorf("email.username and email.password are required (EMAIL_USER, EMAIL_PASS)")
	}
	if c.DataSource.Provider == "alpaca" && (c.DataSource.AlpacaKey == "" || c.DataSource.AlpacaSecret == "") {
		return fmt.Errorf("data_source.provider=alpaca requires alpaca_key and alpaca_secret")
	}
	switch c.Recommend.Policy {
	case "all", "top":
	default:
		return fmt.Errorf("recommend.policy must be \"all\" or \"top\", got %q", c.Recommend.Policy)
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
