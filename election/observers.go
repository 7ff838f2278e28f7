// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package election

import (
	"log/slog"
	"sync"

	"github.com/consensusvote/consensus/models"
)

// AuditLogger persists every lifecycle transition through the audit
// store and mirrors it to the log.
type AuditLogger struct {
	audit AuditStore
}

func NewAuditLogger(audit AuditStore) *AuditLogger {
	return &AuditLogger{audit: audit}
}

func (l *AuditLogger) HandleElectionEvent(event models.ElectionEvent) error {
	entry := models.AuditEntry{
		ElectionID:     event.Election.ID,
		ElectionName:   event.Election.Name,
		PreviousStatus: event.PreviousStatus,
		NewStatus:      event.NewStatus,
		Timestamp:      event.Timestamp,
	}

	if err := l.audit.SaveAuditEntry(entry); err != nil {
		return err
	}

	slog.Info("election transition audited",
		"election_id", entry.ElectionID,
		"election", entry.ElectionName,
		"previous_status", entry.PreviousStatus,
		"new_status", entry.NewStatus,
	)

	return nil
}

func (l *AuditLogger) Entries() ([]models.AuditEntry, error) {
	return l.audit.AuditEntries()
}

func (l *AuditLogger) EntriesForElection(electionID string) ([]models.AuditEntry, error) {
	return l.audit.AuditEntriesByElection(electionID)
}

// Notification kinds emitted by the Notifier.
const (
	NotificationOpened       = "election_opened"
	NotificationClosed       = "election_closed"
	NotificationStatusChange = "election_status_change"
)

type Notification struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	ElectionID string `json:"election_id"`
}

// Notifier accumulates human-readable notifications for lifecycle
// transitions, queryable by election.
type Notifier struct {
	mu            sync.Mutex
	notifications []Notification
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) HandleElectionEvent(event models.ElectionEvent) error {
	notification := Notification{
		ElectionID: event.Election.ID,
	}

	switch event.NewStatus {
	case models.StatusActive:
		notification.Type = NotificationOpened
		notification.Message = "Election " + event.Election.Name + " is now open for voting."
	case models.StatusClosed:
		notification.Type = NotificationClosed
		notification.Message = "Election " + event.Election.Name + " has closed. Results are now available."
	default:
		notification.Type = NotificationStatusChange
		notification.Message = "Election " + event.Election.Name + " status changed from " +
			event.PreviousStatus + " to " + event.NewStatus + "."
	}

	n.mu.Lock()
	n.notifications = append(n.notifications, notification)
	n.mu.Unlock()

	return nil
}

func (n *Notifier) Notifications() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, len(n.notifications))
	copy(out, n.notifications)
	return out
}

func (n *Notifier) NotificationsForElection(electionID string) []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []Notification
	for _, notification := range n.notifications {
		if notification.ElectionID == electionID {
			out = append(out, notification)
		}
	}
	return out
}
