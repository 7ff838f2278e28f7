// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package election

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/consensusvote/consensus/models"
)

// ResolveTieInput carries an admin's decision on how to break a tie.
type ResolveTieInput struct {
	ElectionID  string
	Kind        string
	CandidateID string
	ResolvedBy  string
	Notes       string
}

// ResultsFunc computes results for a closed election; the voting
// service's CalculateResults satisfies it.
type ResultsFunc func(electionID string) ([]models.Result, error)

// TieResolver records the one-time, admin-mediated breaking of an exact
// top-tally tie after closure.
type TieResolver struct {
	elections   ElectionStore
	resolutions ResolutionStore
	results     ResultsFunc

	now func() time.Time
}

func NewTieResolver(elections ElectionStore, resolutions ResolutionStore, results ResultsFunc) *TieResolver {
	return &TieResolver{
		elections:   elections,
		resolutions: resolutions,
		results:     results,
		now:         time.Now,
	}
}

// Resolve records how the tie was broken. RANDOM draws uniformly from
// the tied candidates with an unpredictable source, MANUAL requires the
// chosen candidate to be among the tied, RECALL records no winner
// (election voided, rerun required). At most one resolution ever exists
// per election.
func (r *TieResolver) Resolve(input ResolveTieInput) (models.TieResolution, error) {
	election, err := r.elections.Election(input.ElectionID)
	if errors.Is(err, models.ErrNotFound) {
		return models.TieResolution{}, ErrNotFound
	}
	if err != nil {
		return models.TieResolution{}, fmt.Errorf("failed to load election: %w", err)
	}

	if election.Status != models.StatusClosed {
		return models.TieResolution{}, ErrNotClosed
	}

	results, err := r.results(input.ElectionID)
	if err != nil {
		return models.TieResolution{}, fmt.Errorf("failed to compute results: %w", err)
	}

	var tied []models.Result
	for _, result := range results {
		if result.Tied {
			tied = append(tied, result)
		}
	}
	if len(tied) == 0 {
		return models.TieResolution{}, ErrNoTie
	}

	if _, err := r.resolutions.ResolutionByElection(input.ElectionID); err == nil {
		return models.TieResolution{}, ErrAlreadyResolved
	} else if !errors.Is(err, models.ErrNotFound) {
		return models.TieResolution{}, fmt.Errorf("failed to check for existing resolution: %w", err)
	}

	var winner *string
	switch input.Kind {
	case models.ResolutionRandom:
		// crypto/rand so the draw cannot be predicted or reproduced by
		// the resolving admin.
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(tied))))
		if err != nil {
			return models.TieResolution{}, fmt.Errorf("failed to draw random winner: %w", err)
		}
		id := tied[n.Int64()].CandidateID
		winner = &id

	case models.ResolutionManual:
		if input.CandidateID == "" {
			return models.TieResolution{}, ErrInvalidSelection
		}
		valid := false
		for _, result := range tied {
			if result.CandidateID == input.CandidateID {
				valid = true
				break
			}
		}
		if !valid {
			return models.TieResolution{}, ErrInvalidSelection
		}
		id := input.CandidateID
		winner = &id

	case models.ResolutionRecall:
		winner = nil

	default:
		return models.TieResolution{}, fmt.Errorf("%w: %q", ErrUnknownKind, input.Kind)
	}

	resolution := models.TieResolution{
		ID:                uuid.NewString(),
		ElectionID:        input.ElectionID,
		Kind:              input.Kind,
		WinnerCandidateID: winner,
		ResolvedBy:        input.ResolvedBy,
		ResolvedAt:        r.now(),
		Notes:             input.Notes,
	}

	if err := r.resolutions.SaveResolution(resolution); err != nil {
		// A concurrent resolve won the race; the uniqueness constraint
		// on election_id keeps one resolution per election.
		if errors.Is(err, models.ErrConflict) {
			return models.TieResolution{}, ErrAlreadyResolved
		}
		return models.TieResolution{}, fmt.Errorf("failed to save resolution: %w", err)
	}

	slog.Info("tie resolved",
		"election_id", input.ElectionID,
		"kind", input.Kind,
		"resolved_by", input.ResolvedBy,
	)

	return resolution, nil
}

// Resolution returns the recorded resolution for an election, or
// models.ErrNotFound when none exists.
func (r *TieResolver) Resolution(electionID string) (models.TieResolution, error) {
	return r.resolutions.ResolutionByElection(electionID)
}
