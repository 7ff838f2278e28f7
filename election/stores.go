// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package election

import "github.com/consensusvote/consensus/models"

// Storage collaborators for the lifecycle service, tie resolver, and
// audit observer. All are satisfied by *store.Store. Lookups return
// models.ErrNotFound when no row matches; SaveResolution returns
// models.ErrConflict when the election already has a resolution.

type ElectionStore interface {
	SaveElection(e models.Election) error
	UpdateElection(e models.Election) error
	Election(id string) (models.Election, error)
	Elections() ([]models.Election, error)
	ElectionsByStatus(status string) ([]models.Election, error)
	DeleteElection(id string) error
}

type CandidateStore interface {
	SaveCandidate(c models.Candidate) error
	Candidate(id string) (models.Candidate, error)
	CandidatesByElection(electionID string) ([]models.Candidate, error)
	DeleteCandidate(id string) error
}

type ResolutionStore interface {
	SaveResolution(r models.TieResolution) error
	ResolutionByElection(electionID string) (models.TieResolution, error)
}

type AuditStore interface {
	SaveAuditEntry(entry models.AuditEntry) error
	AuditEntries() ([]models.AuditEntry, error)
	AuditEntriesByElection(electionID string) ([]models.AuditEntry, error)
}
