package recorder

import "StockAgent/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *model.RunSummary) error                           { return nil }
func (n *NoopRecorder) RecordRecommendations(_ string, _ []model.Recommendation) error { return nil }
func (n *NoopRecorder) RecordFeedback(_ string) error                                  { return nil }
func (n *NoopRecorder) Close() error                                                   { return nil }
