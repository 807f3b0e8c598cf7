package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockAgent/internal/model"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			run_id          TEXT,
			tickers         INTEGER,
			analyzed        INTEGER,
			recommendations INTEGER,
			email_sent      INTEGER,
			store_ok        INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS recommendations (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			run_id      TEXT,
			ticker      TEXT,
			change_pct  REAL,
			entry_price REAL,
			exit_price  REAL,
			sentiment   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_recs_ts ON recommendations(timestamp)`,

		`CREATE TABLE IF NOT EXISTS feedback (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			rating    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_feedback_ts ON feedback(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(sum *model.RunSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO runs
		(timestamp, run_id, tickers, analyzed, recommendations, email_sent, store_ok)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), sum.RunID, sum.Tickers, sum.Analyzed,
		sum.Recommendations, boolInt(sum.EmailSent), boolInt(sum.StoreOK),
	)
	return err
}

func (r *SQLiteRecorder) RecordRecommendations(runID string, recs []model.Recommendation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	for _, rec := range recs {
		_, err := r.db.Exec(`INSERT INTO recommendations
			(timestamp, run_id, ticker, change_pct, entry_price, exit_price, sentiment)
			VALUES (?,?,?,?,?,?,?)`,
			now, runID, rec.Ticker, rec.Change, rec.EntryPrice, rec.ExitPrice, rec.Sentiment,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordFeedback(rating string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO feedback (timestamp, rating) VALUES (?,?)`,
		time.Now().Unix(), rating,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
