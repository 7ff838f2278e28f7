// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package election

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/consensusvote/consensus/models"
)

// CreateElectionInput carries the fields needed to set up a new
// election in DRAFT.
type CreateElectionInput struct {
	Name        string
	Type        string
	StartDate   time.Time
	EndDate     time.Time
	Description string
}

// AddCandidateInput carries a candidate's public profile.
type AddCandidateInput struct {
	Name      string
	Party     string
	Biography string
}

// Service manages the election lifecycle: DRAFT -> ACTIVE -> CLOSED,
// candidate setup while in draft, and observer notification on every
// transition.
type Service struct {
	elections  ElectionStore
	candidates CandidateStore
	emitter    *Emitter

	now func() time.Time
}

func NewService(elections ElectionStore, candidates CandidateStore, emitter *Emitter) *Service {
	if emitter == nil {
		emitter = NewEmitter()
	}
	return &Service{
		elections:  elections,
		candidates: candidates,
		emitter:    emitter,
		now:        time.Now,
	}
}

// EventEmitter exposes the emitter so assembly code can subscribe
// observers without reaching into service internals.
func (s *Service) EventEmitter() *Emitter {
	return s.emitter
}

// CreateElection validates dates and the counting rule, then stores the
// election in DRAFT.
func (s *Service) CreateElection(input CreateElectionInput) (models.Election, error) {
	switch input.Type {
	case models.TypeFPTP, models.TypeSTV, models.TypeAV, models.TypePreferential:
	default:
		return models.Election{}, fmt.Errorf("%w: %q", ErrUnknownType, input.Type)
	}

	if !input.EndDate.After(input.StartDate) {
		return models.Election{}, ErrInvalidDates
	}

	// Compare at date granularity so an election can start any time
	// today.
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := input.StartDate
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	if startDay.Before(today) {
		return models.Election{}, ErrStartDateInPast
	}

	election := models.Election{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Type:        input.Type,
		Status:      models.StatusDraft,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Description: input.Description,
		CreatedAt:   now,
	}

	if err := s.elections.SaveElection(election); err != nil {
		return models.Election{}, fmt.Errorf("failed to save election: %w", err)
	}

	slog.Info("election created", "election_id", election.ID, "type", election.Type)

	return election, nil
}

// AddCandidate registers a candidate on a draft election. The candidate
// set is immutable once the election leaves DRAFT.
func (s *Service) AddCandidate(electionID string, input AddCandidateInput) (models.Candidate, error) {
	election, err := s.findElection(electionID)
	if err != nil {
		return models.Candidate{}, err
	}

	if election.Status != models.StatusDraft {
		return models.Candidate{}, ErrNotDraft
	}

	candidate := models.Candidate{
		ID:         uuid.NewString(),
		ElectionID: electionID,
		Name:       input.Name,
		Party:      input.Party,
		Biography:  input.Biography,
	}

	if err := s.candidates.SaveCandidate(candidate); err != nil {
		return models.Candidate{}, fmt.Errorf("failed to save candidate: %w", err)
	}

	return candidate, nil
}

// RemoveCandidate deletes a candidate from a draft election.
func (s *Service) RemoveCandidate(electionID, candidateID string) error {
	election, err := s.findElection(electionID)
	if err != nil {
		return err
	}

	if election.Status != models.StatusDraft {
		return ErrNotDraft
	}

	candidate, err := s.candidates.Candidate(candidateID)
	if errors.Is(err, models.ErrNotFound) {
		return ErrCandidateNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load candidate: %w", err)
	}

	if candidate.ElectionID != electionID {
		return ErrCandidateNotFound
	}

	return s.candidates.DeleteCandidate(candidateID)
}

// Election returns one election by ID.
func (s *Service) Election(electionID string) (models.Election, error) {
	return s.findElection(electionID)
}

// Candidates returns the candidates of an election.
func (s *Service) Candidates(electionID string) ([]models.Candidate, error) {
	return s.candidates.CandidatesByElection(electionID)
}

// Elections returns every election.
func (s *Service) Elections() ([]models.Election, error) {
	return s.elections.Elections()
}

// ActiveElections returns elections currently accepting votes.
func (s *Service) ActiveElections() ([]models.Election, error) {
	return s.elections.ElectionsByStatus(models.StatusActive)
}

// ClosedElections returns elections whose results are available.
func (s *Service) ClosedElections() ([]models.Election, error) {
	return s.elections.ElectionsByStatus(models.StatusClosed)
}

// ActivateElection transitions DRAFT -> ACTIVE. The election needs at
// least two candidates; a one-candidate election is not a vote.
func (s *Service) ActivateElection(electionID string) error {
	election, err := s.findElection(electionID)
	if err != nil {
		return err
	}

	// Forward-only lifecycle: CLOSED is terminal and ACTIVE needs no
	// re-activation.
	if election.Status != models.StatusDraft {
		return ErrNotDraft
	}

	candidates, err := s.candidates.CandidatesByElection(electionID)
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}
	if len(candidates) < 2 {
		return ErrInsufficientCandidates
	}

	previousStatus := election.Status
	election.Status = models.StatusActive
	if err := s.elections.UpdateElection(election); err != nil {
		return fmt.Errorf("failed to update election: %w", err)
	}

	s.emitter.Notify(election, previousStatus, models.StatusActive)

	return nil
}

// CloseElection transitions an election to CLOSED. Closing is always
// permitted, even with zero votes or straight from DRAFT; CLOSED is
// terminal.
func (s *Service) CloseElection(electionID string) error {
	election, err := s.findElection(electionID)
	if err != nil {
		return err
	}

	previousStatus := election.Status
	election.Status = models.StatusClosed
	if err := s.elections.UpdateElection(election); err != nil {
		return fmt.Errorf("failed to update election: %w", err)
	}

	s.emitter.Notify(election, previousStatus, models.StatusClosed)

	return nil
}

// DeleteElection removes a draft election and its candidates. Elections
// that ever accepted votes cannot be deleted.
func (s *Service) DeleteElection(electionID string) error {
	election, err := s.findElection(electionID)
	if err != nil {
		return err
	}

	if election.Status != models.StatusDraft {
		return ErrNotDraft
	}

	candidates, err := s.candidates.CandidatesByElection(electionID)
	if err != nil {
		return fmt.Errorf("failed to load candidates: %w", err)
	}
	for _, candidate := range candidates {
		if err := s.candidates.DeleteCandidate(candidate.ID); err != nil {
			return fmt.Errorf("failed to delete candidate: %w", err)
		}
	}

	return s.elections.DeleteElection(electionID)
}

func (s *Service) findElection(electionID string) (models.Election, error) {
	election, err := s.elections.Election(electionID)
	if errors.Is(err, models.ErrNotFound) {
		return models.Election{}, ErrNotFound
	}
	if err != nil {
		return models.Election{}, fmt.Errorf("failed to load election: %w", err)
	}
	return election, nil
}
