package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"StockAgent/internal/agent"
)

// Scheduler keeps the process resident and fires the pipeline on a weekly
// cron expression in a fixed timezone.
type Scheduler struct {
	Cron  *cron.Cron
	Agent *agent.Agent
	Ctx   context.Context
}

// NewScheduler creates a scheduler in the given timezone.
func NewScheduler(ctx context.Context, ag *agent.Agent, timezone string) (*Scheduler, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &Scheduler{
		Cron:  cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		Agent: ag,
		Ctx:   ctx,
	}, nil
}

// Register adds the weekly pipeline job.
func (s *Scheduler) Register(weeklyCron string) error {
	if _, err := s.Cron.AddFunc(weeklyCron, s.weeklyTask); err != nil {
		return fmt.Errorf("register weekly task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the weekly task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.weeklyTask()
}

func (s *Scheduler) weeklyTask() {
	log.Println("[INFO] running weekly task")
	s.Agent.Run(s.Ctx)
}
