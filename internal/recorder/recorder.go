package recorder

import "StockAgent/internal/model"

// Recorder persists run history for later analysis.
type Recorder interface {
	RecordRun(sum *model.RunSummary) error
	RecordRecommendations(runID string, recs []model.Recommendation) error
	RecordFeedback(rating string) error
	Close() error
}
