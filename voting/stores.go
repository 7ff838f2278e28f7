// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package voting

import (
	"time"

	"github.com/consensusvote/consensus/models"
)

// Storage collaborators the casting orchestrator depends on. All are
// satisfied by *store.Store; tests may substitute fakes. Lookups return
// models.ErrNotFound when no row matches, and writes guarded by a
// uniqueness constraint return models.ErrConflict on violation.

type BallotStore interface {
	SaveBallot(ballot models.Ballot) error
	BallotsByElection(electionID string) ([]models.Ballot, error)
	BallotCount(electionID string) (int, error)
}

type EligibilityStore interface {
	HasVoted(voterID, electionID string) (bool, error)
	// MarkVoted records the at-most-once flag. The backing store
	// enforces uniqueness on (voter, election); a conflict means a
	// concurrent cast already succeeded.
	MarkVoted(voterID, electionID string, votedAt time.Time) error
}

type ConfirmationStore interface {
	SaveConfirmation(confirmation models.VoteConfirmation) error
	ConfirmationsByVoter(voterID string) ([]models.VoteConfirmation, error)
}

type ElectionFinder interface {
	Election(id string) (models.Election, error)
}

type CandidateLister interface {
	CandidatesByElection(electionID string) ([]models.Candidate, error)
}
