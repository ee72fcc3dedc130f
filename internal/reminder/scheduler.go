// Package reminder drives the periodic due-reminder scan.
package reminder

import (
	"context"
	"time"

	"voice-todo/internal/todo"
	pkgLog "voice-todo/pkg/log"
)

// DefaultInterval is how often pending reminders are checked.
const DefaultInterval = 60 * time.Second

// Scanner is the part of todo.UseCase the scheduler needs.
type Scanner interface {
	ScanDueReminders(ctx context.Context, now time.Time) (todo.ScanOutput, error)
}

// Scheduler scans for due reminders at a fixed interval.
type Scheduler struct {
	l        pkgLog.Logger
	scanner  Scanner
	interval time.Duration
	now      func() time.Time
}

func New(l pkgLog.Logger, scanner Scanner, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		l:        l,
		scanner:  scanner,
		interval: interval,
		now:      time.Now,
	}
}

// Run scans once immediately and then on every tick. It blocks until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	s.l.Infof(ctx, "reminder.Scheduler: started, interval %s", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.scan(ctx)
	for {
		select {
		case <-ctx.Done():
			s.l.Info(ctx, "reminder.Scheduler: stopped")
			return
		case <-ticker.C:
			s.scan(ctx)
		}
	}
}

func (s *Scheduler) scan(ctx context.Context) {
	if _, err := s.scanner.ScanDueReminders(ctx, s.now()); err != nil && ctx.Err() == nil {
		s.l.Errorf(ctx, "reminder.Scheduler.scan: %v", err)
	}
}
