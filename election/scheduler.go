// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package election

import (
	"log/slog"
	"sync"
	"time"
)

// Scheduler periodically closes ACTIVE elections whose end date has
// passed, through the same CloseElection path an admin uses, so the
// automatic and manual routes share one set of invariants.
type Scheduler struct {
	service  *Service
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewScheduler(service *Service, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{service: service, interval: interval}
}

// Start launches the background sweep. The first sweep runs
// immediately. Calling Start on a running scheduler is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		return
	}

	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	slog.Info("election scheduler started", "interval", s.interval)

	go func(stop, done chan struct{}) {
		defer close(done)

		s.sweep()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-stop:
				return
			}
		}
	}(s.stop, s.done)
}

// Stop halts the sweep loop and waits for it to exit. Calling Stop on a
// stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}

	close(stop)
	<-done

	slog.Info("election scheduler stopped")
}

// IsRunning reports whether the sweep loop is active.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

func (s *Scheduler) sweep() {
	elections, err := s.service.ActiveElections()
	if err != nil {
		slog.Error("scheduler failed to list active elections", "error", err)
		return
	}

	now := time.Now()
	for _, election := range elections {
		if election.EndDate.After(now) {
			continue
		}

		slog.Info("auto-closing election", "election_id", election.ID, "name", election.Name)
		if err := s.service.CloseElection(election.ID); err != nil {
			slog.Error("scheduler failed to close election", "election_id", election.ID, "error", err)
		}
	}
}
