// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package election

import (
	"log/slog"
	"sync"
	"time"

	"github.com/consensusvote/consensus/models"
)

// Observer receives lifecycle transition events. Implementations must
// tolerate being called synchronously on the transition path.
type Observer interface {
	HandleElectionEvent(event models.ElectionEvent) error
}

// Emitter fans lifecycle events out to subscribed observers. It is an
// explicit dependency of the lifecycle service, owned by whoever wires
// the service graph; there is no process-wide instance.
type Emitter struct {
	mu        sync.RWMutex
	observers []Observer
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

func (e *Emitter) Subscribe(o Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, existing := range e.observers {
		if existing == o {
			return
		}
	}
	e.observers = append(e.observers, o)
}

func (e *Emitter) Unsubscribe(o Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, existing := range e.observers {
		if existing == o {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// Notify builds the event and delivers it to every observer in
// subscription order. Observer failures are logged and never
// propagated: the state transition already succeeded in the store, and
// a broken audit sink must not block it.
func (e *Emitter) Notify(election models.Election, previousStatus, newStatus string) {
	event := models.ElectionEvent{
		Election:       election,
		PreviousStatus: previousStatus,
		NewStatus:      newStatus,
		Timestamp:      time.Now(),
	}

	e.mu.RLock()
	observers := make([]Observer, len(e.observers))
	copy(observers, e.observers)
	e.mu.RUnlock()

	for _, o := range observers {
		if err := o.HandleElectionEvent(event); err != nil {
			slog.Error("election observer failed",
				"election_id", election.ID,
				"transition", previousStatus+" -> "+newStatus,
				"error", err,
			)
		}
	}
}

func (e *Emitter) ObserverCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.observers)
}
