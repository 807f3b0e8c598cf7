package store

import (
	"fmt"
	"os"
	"time"

	"StockAgent/internal/model"
)

// FileStore appends recommendations to a durable text file, one timestamped
// line per record. Lines are never updated or deleted.
type FileStore struct {
	Path string
}

// NewFileStore creates a store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Append writes one line per recommendation. The caller decides whether a
// failure aborts anything; here it never does more than return the error.
func (s *FileStore) Append(recs []model.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	now := time.Now().Format("2006-01-02 15:04:05")
	for _, rec := range recs {
		if _, err := fmt.Fprintf(f, "%s | %s\n", now, rec); err != nil {
			return fmt.Errorf("write %s: %w", s.Path, err)
		}
	}
	return nil
}
