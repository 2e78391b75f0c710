package operator

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler fires operator ticks on a cron schedule
type Scheduler struct {
	Cron *cron.Cron
}

// NewScheduler creates a scheduler accepting six-field (seconds) cron specs
func NewScheduler() *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
	}
}

// Register adds tick under spec
func (s *Scheduler) Register(spec string, tick func()) error {
	if _, err := s.Cron.AddFunc(spec, tick); err != nil {
		return fmt.Errorf("register tick %q: %w", spec, err)
	}
	return nil
}

// Start starts the cron scheduler
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for running ticks
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}
