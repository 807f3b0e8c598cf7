package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"StockAgent/internal/agent"
	"StockAgent/internal/collector"
	"StockAgent/internal/config"
	"StockAgent/internal/feedback"
	"StockAgent/internal/news"
	"StockAgent/internal/notifier"
	"StockAgent/internal/recorder"
	"StockAgent/internal/scheduler"
	"StockAgent/internal/sentiment"
	"StockAgent/internal/store"
	"StockAgent/internal/strategy"
)

func main() {
	godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	// Timestamped per-run log file alongside stdout
	closeLog, err := setupLogging(cfg.Files.LogDir)
	if err != nil {
		log.Printf("[WARN] log file setup failed, logging to stdout only: %v", err)
	} else {
		defer closeLog()
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockAgent starting...")

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.Provider == "alpaca" {
		fetcher = collector.NewAlpacaFetcher(cfg.DataSource.AlpacaKey, cfg.DataSource.AlpacaSecret)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Feedback collector runs for the life of the process
	fb := feedback.NewCollector(cfg.Files.Feedback, rec)
	fb.Start(ctx)

	ag := &agent.Agent{
		Tickers:   cfg.Tickers,
		Collector: collector.NewCollector(fetcher, cfg.DataSource.WindowDays),
		News:      news.NewClient(cfg.News.APIKey, cfg.Proxy),
		Sentiment: sentiment.NewAnalyzer(cfg.OpenAI.APIKey, cfg.OpenAI.Model),
		Store:     store.NewFileStore(cfg.Files.Recommendations),
		Mailer:    notifier.NewEmailNotifier(cfg.Email.Host, cfg.Email.Port, cfg.Email.Username, cfg.Email.Password, cfg.Email.To),
		Recorder:  rec,
		Policy: strategy.Policy{
			Mode:      cfg.Recommend.Policy,
			TopN:      cfg.Recommend.TopN,
			MinChange: cfg.Recommend.MinChange,
		},
	}

	if os.Getenv("SCHEDULE") == "true" {
		// Resident mode: fire weekly, never block on a terminal.
		sched, err := scheduler.NewScheduler(ctx, ag, cfg.Schedule.Timezone)
		if err != nil {
			log.Fatalf("[FATAL] init scheduler: %v", err)
		}
		if err := sched.Register(cfg.Schedule.WeeklyCron); err != nil {
			log.Fatalf("[FATAL] register cron task: %v", err)
		}
		sched.Start()
		defer sched.Stop()

		if os.Getenv("RUN_ON_START") == "true" {
			log.Println("[INFO] RUN_ON_START enabled, executing weekly task now")
			go sched.RunNow()
		}

		log.Println("[INFO] StockAgent is running. Press Ctrl+C to stop.")
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("[INFO] shutdown signal received, stopping...")
	} else {
		// One-shot mode: run the pipeline once and ask for feedback.
		ag.Run(ctx)
		fb.Prompt(os.Stdin, os.Stdout)
	}

	cancel()
	fb.Wait()
	log.Println("[INFO] StockAgent stopped")
}

// setupLogging mirrors log output to a timestamped file under logDir.
func setupLogging(logDir string) (func(), error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(logDir, fmt.Sprintf("stock_agent_%s.log", time.Now().Format("2006-01-02_15-04-05")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(io.MultiWriter(os.Stdout, f))
	return func() { f.Close() }, nil
}
