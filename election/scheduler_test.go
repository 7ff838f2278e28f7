// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package election

import (
	"testing"
	"time"

	"github.com/consensusvote/consensus/models"
	"github.com/consensusvote/consensus/testutil"
)

func TestSchedulerClosesExpiredElections(t *testing.T) {
	s := testutil.SetupTestStore(t)
	svc := NewService(s, s, nil)

	expired := testutil.CreateTestElection(t, s, models.TypeFPTP, models.StatusActive)
	expired.EndDate = time.Now().Add(-time.Hour)
	if err := s.UpdateElection(expired); err != nil {
		t.Fatal(err)
	}

	current := testutil.CreateTestElection(t, s, models.TypeFPTP, models.StatusActive)

	scheduler := NewScheduler(svc, time.Hour)
	scheduler.Start()
	defer scheduler.Stop()

	// The first sweep runs immediately on Start
	deadline := time.After(2 * time.Second)
	for {
		got, err := svc.Election(expired.ID)
		if err != nil {
			t.Fatal(err)
		}
		if got.Status == models.StatusClosed {
			break
		}
		select {
		case <-deadline:
			t.Fatal("expired election was not auto-closed")
		case <-time.After(10 * time.Millisecond):
		}
	}

	stillActive, err := svc.Election(current.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stillActive.Status != models.StatusActive {
		t.Errorf("current election status = %s, want ACTIVE", stillActive.Status)
	}
}

func TestSchedulerStartStop(t *testing.T) {
	s := testutil.SetupTestStore(t)
	svc := NewService(s, s, nil)

	scheduler := NewScheduler(svc, time.Hour)

	if scheduler.IsRunning() {
		t.Error("IsRunning() = true before Start")
	}

	scheduler.Start()
	scheduler.Start() // second Start is a no-op
	if !scheduler.IsRunning() {
		t.Error("IsRunning() = false after Start")
	}

	scheduler.Stop()
	if scheduler.IsRunning() {
		t.Error("IsRunning() = true after Stop")
	}

	scheduler.Stop() // second Stop is a no-op
}

func TestSchedulerSweepEmitsLifecycleEvents(t *testing.T) {
	s := testutil.SetupTestStore(t)

	emitter := NewEmitter()
	observer := &recordingObserver{}
	emitter.Subscribe(observer)

	svc := NewService(s, s, emitter)

	expired := testutil.CreateTestElection(t, s, models.TypeFPTP, models.StatusActive)
	expired.EndDate = time.Now().Add(-time.Hour)
	if err := s.UpdateElection(expired); err != nil {
		t.Fatal(err)
	}

	scheduler := NewScheduler(svc, time.Hour)
	scheduler.Start()
	scheduler.Stop() // Stop waits for the in-flight sweep

	if len(observer.events) != 1 {
		t.Fatalf("observer events = %d, want 1", len(observer.events))
	}
	if observer.events[0].NewStatus != models.StatusClosed {
		t.Errorf("event status = %s, want CLOSED", observer.events[0].NewStatus)
	}
}
