package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Scheduler runs named jobs on fixed intervals. The only recurring work
// in this system is the shift guard sweep, so there is no cron-expression
// parsing, just one ticker goroutine per job. Each job runs once at start
// so a freshly booted instance closes abandoned shifts without waiting a
// full interval.
type Scheduler struct {
	cancel  context.CancelFunc
	ctx     context.Context
	jobs    []job
	wg      sync.WaitGroup
	mu      sync.Mutex
	started bool
}

type job struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// NewScheduler builds a scheduler whose jobs stop when parent is
// cancelled or Stop is called, whichever comes first.
func NewScheduler(parent context.Context) *Scheduler {
	ctx, cancel := context.WithCancel(parent)
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job. Jobs must be registered before Start.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		slog.Error("Job registered after scheduler start, ignoring", "name", name)
		return
	}
	s.jobs = append(s.jobs, job{name: name, interval: interval, run: fn})
	slog.Info("Scheduled job registered", "name", name, "interval", interval)
}

// Start launches one goroutine per registered job.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}
	slog.Info("Scheduler started", "jobs", len(s.jobs))
}

// Stop cancels all jobs and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.wg.Done()

	s.execute(j)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.execute(j)
		}
	}
}

func (s *Scheduler) execute(j job) {
	start := time.Now()
	if err := j.run(s.ctx); err != nil {
		slog.Error("Scheduled job failed", "name", j.name, "error", err, "duration", time.Since(start))
	}
}
