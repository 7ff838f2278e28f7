// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package election

import (
	"errors"
	"testing"
	"time"

	"github.com/consensusvote/consensus/models"
	"github.com/consensusvote/consensus/testutil"
)

type recordingObserver struct {
	events []models.ElectionEvent
	err    error
}

func (o *recordingObserver) HandleElectionEvent(event models.ElectionEvent) error {
	o.events = append(o.events, event)
	return o.err
}

func TestEmitterSubscribeUnsubscribe(t *testing.T) {
	emitter := NewEmitter()
	a := &recordingObserver{}
	b := &recordingObserver{}

	emitter.Subscribe(a)
	emitter.Subscribe(b)
	emitter.Subscribe(a) // duplicate is ignored

	if emitter.ObserverCount() != 2 {
		t.Errorf("ObserverCount() = %d, want 2", emitter.ObserverCount())
	}

	emitter.Unsubscribe(a)
	if emitter.ObserverCount() != 1 {
		t.Errorf("ObserverCount() after unsubscribe = %d, want 1", emitter.ObserverCount())
	}

	emitter.Notify(models.Election{ID: "e1"}, models.StatusDraft, models.StatusActive)
	if len(a.events) != 0 {
		t.Error("unsubscribed observer received event")
	}
	if len(b.events) != 1 {
		t.Fatalf("observer events = %d, want 1", len(b.events))
	}
	if b.events[0].PreviousStatus != models.StatusDraft || b.events[0].NewStatus != models.StatusActive {
		t.Errorf("event transition = %s -> %s", b.events[0].PreviousStatus, b.events[0].NewStatus)
	}
}

func TestEmitterIsolatesObserverFailures(t *testing.T) {
	emitter := NewEmitter()
	failing := &recordingObserver{err: errors.New("sink down")}
	healthy := &recordingObserver{}

	emitter.Subscribe(failing)
	emitter.Subscribe(healthy)

	emitter.Notify(models.Election{ID: "e1", Name: "Board"}, models.StatusActive, models.StatusClosed)

	// The failing observer must not prevent delivery to the next one
	if len(healthy.events) != 1 {
		t.Errorf("healthy observer events = %d, want 1", len(healthy.events))
	}
}

func TestAuditLoggerPersistsTransitions(t *testing.T) {
	s := testutil.SetupTestStore(t)

	emitter := NewEmitter()
	audit := NewAuditLogger(s)
	emitter.Subscribe(audit)

	svc := NewService(s, s, emitter)

	created, err := svc.CreateElection(validInput())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddCandidate(created.ID, AddCandidateInput{Name: "Alice"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddCandidate(created.ID, AddCandidateInput{Name: "Bob"}); err != nil {
		t.Fatal(err)
	}
	if err := svc.ActivateElection(created.ID); err != nil {
		t.Fatal(err)
	}
	if err := svc.CloseElection(created.ID); err != nil {
		t.Fatal(err)
	}

	entries, err := audit.EntriesForElection(created.ID)
	if err != nil {
		t.Fatalf("EntriesForElection() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("audit entries = %d, want 2", len(entries))
	}
	if entries[0].PreviousStatus != models.StatusDraft || entries[0].NewStatus != models.StatusActive {
		t.Errorf("first entry = %s -> %s, want DRAFT -> ACTIVE", entries[0].PreviousStatus, entries[0].NewStatus)
	}
	if entries[1].PreviousStatus != models.StatusActive || entries[1].NewStatus != models.StatusClosed {
		t.Errorf("second entry = %s -> %s, want ACTIVE -> CLOSED", entries[1].PreviousStatus, entries[1].NewStatus)
	}
}

func TestNotifierMessages(t *testing.T) {
	notifier := NewNotifier()

	election := models.Election{ID: "e1", Name: "Board Election"}
	event := models.ElectionEvent{
		Election:       election,
		PreviousStatus: models.StatusDraft,
		NewStatus:      models.StatusActive,
		Timestamp:      time.Now(),
	}
	if err := notifier.HandleElectionEvent(event); err != nil {
		t.Fatal(err)
	}

	event.PreviousStatus = models.StatusActive
	event.NewStatus = models.StatusClosed
	if err := notifier.HandleElectionEvent(event); err != nil {
		t.Fatal(err)
	}

	notifications := notifier.NotificationsForElection("e1")
	if len(notifications) != 2 {
		t.Fatalf("notifications = %d, want 2", len(notifications))
	}
	if notifications[0].Type != NotificationOpened {
		t.Errorf("first type = %s, want %s", notifications[0].Type, NotificationOpened)
	}
	if notifications[1].Type != NotificationClosed {
		t.Errorf("second type = %s, want %s", notifications[1].Type, NotificationClosed)
	}

	if len(notifier.NotificationsForElection("other")) != 0 {
		t.Error("notifications leaked to other election")
	}
}
