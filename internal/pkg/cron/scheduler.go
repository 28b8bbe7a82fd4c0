// Package cron runs the periodic background refreshes that keep the
// read-side snapshots current while the backing sheets change externally.
package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a named function run on a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context) error
}

// Scheduler owns a set of repeating jobs. Jobs are registered before
// Start; Stop cancels them all and waits for the running ones to finish.
type Scheduler struct {
	mu     sync.Mutex
	jobs   []Job
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add registers a job.
func (s *Scheduler) Add(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, Job{Name: name, Interval: interval, Fn: fn})
	slog.Info("background job registered", "name", name, "interval", interval)
}

// Start launches every registered job. Each runs once immediately, then on
// its interval, until Stop or ctx cancellation.
func (s *Scheduler) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.cancel = cancel
	jobs := s.jobs
	s.mu.Unlock()

	for _, job := range jobs {
		s.wg.Add(1)
		go s.run(ctx, job)
	}
	slog.Info("background scheduler started", "job_count", len(jobs))
}

// Stop cancels all jobs and blocks until they have returned.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
	slog.Info("background scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context, job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.execute(ctx, job)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.execute(ctx, job)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, job Job) {
	start := time.Now()
	if err := job.Fn(ctx); err != nil {
		slog.Error("background job failed", "name", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("background job completed", "name", job.Name, "duration", time.Since(start))
}
