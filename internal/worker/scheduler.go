// Package worker runs background jobs alongside the HTTP server.
package worker

import (
	"context"
	"sync"
	"time"

	"team-planner-backend/internal/logger"
	"team-planner-backend/internal/service"
)

// ReminderRunner executes one reminder sweep
type ReminderRunner interface {
	RunCycle(ctx context.Context, now time.Time) (*service.ReminderCycleResult, error)
}

// ReminderScheduler runs a sweep immediately on Start and then on every tick.
// Each cycle gets its own timeout; cycle errors are logged and never stop the loop.
type ReminderScheduler struct {
	runner       ReminderRunner
	interval     time.Duration
	cycleTimeout time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	lastRun  time.Time
	runCount int64
}

// NewReminderScheduler creates a scheduler. A non-positive cycleTimeout uses the interval.
func NewReminderScheduler(runner ReminderRunner, interval, cycleTimeout time.Duration) *ReminderScheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	if cycleTimeout <= 0 {
		cycleTimeout = interval
	}
	return &ReminderScheduler{
		runner:       runner,
		interval:     interval,
		cycleTimeout: cycleTimeout,
	}
}

// Start launches the loop. It is a no-op when already running.
func (s *ReminderScheduler) Start(parent context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	ctx, cancel := context.WithCancel(parent)
	s.running = true
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.loop(ctx, s.done)

	logger.New().WithField("interval", s.interval.String()).Info("Reminder scheduler started")
}

// Stop cancels the loop and waits for an in-flight cycle to return
func (s *ReminderScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	<-done

	logger.New().Info("Reminder scheduler stopped")
}

// Stats returns when the last cycle started and how many cycles ran
func (s *ReminderScheduler) Stats() (time.Time, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun, s.runCount
}

func (s *ReminderScheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *ReminderScheduler) runOnce(parent context.Context) {
	if parent.Err() != nil {
		return
	}

	ctx, cancel := context.WithTimeout(parent, s.cycleTimeout)
	defer cancel()

	now := time.Now().UTC()
	s.mu.Lock()
	s.lastRun = now
	s.runCount++
	s.mu.Unlock()

	log := logger.New().WithField("component", "reminder")

	result, err := s.runner.RunCycle(ctx, now)
	if err != nil {
		log.Errorf("Reminder cycle failed: %v", err)
		return
	}

	log.WithFields(map[string]interface{}{
		"tasks":   result.TasksScanned,
		"events":  result.EventsScanned,
		"sent":    result.Sent,
		"skipped": result.Skipped,
		"failed":  result.Failed,
		"elapsed": time.Since(now).String(),
	}).Info("Reminder cycle completed")
}
