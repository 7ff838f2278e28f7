// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package voting

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/consensusvote/consensus/models"
	"github.com/consensusvote/consensus/strategy"
)

// CastVoteInput carries one vote submission: the election plus either a
// single candidate choice (plurality) or a ranked preference list.
type CastVoteInput struct {
	ElectionID  string
	CandidateID string
	Preferences []string
}

// Service sequences eligibility checks, election state checks, strategy
// validation, ballot creation, anonymization, persistence, and
// eligibility marking for each cast, and tabulates results for closed
// elections.
type Service struct {
	ballots       BallotStore
	eligibility   EligibilityStore
	confirmations ConfirmationStore
	elections     ElectionFinder
	candidates    CandidateLister

	now func() time.Time
}

func NewService(ballots BallotStore, eligibility EligibilityStore, confirmations ConfirmationStore, elections ElectionFinder, candidates CandidateLister) *Service {
	return &Service{
		ballots:       ballots,
		eligibility:   eligibility,
		confirmations: confirmations,
		elections:     elections,
		candidates:    candidates,
		now:           time.Now,
	}
}

// CastVote validates a submission, severs the voter identity from the
// vote content, persists both halves, and marks the voter's
// eligibility. Preconditions are checked in order and each failure is a
// distinct typed error with no partial writes visible to callers.
func (s *Service) CastVote(voter models.Voter, input CastVoteInput) (models.VoteConfirmation, error) {
	if voter.RegistrationStatus != models.RegistrationApproved {
		return models.VoteConfirmation{}, ErrVoterNotApproved
	}

	election, err := s.elections.Election(input.ElectionID)
	if errors.Is(err, models.ErrNotFound) {
		return models.VoteConfirmation{}, ErrElectionNotFound
	}
	if err != nil {
		return models.VoteConfirmation{}, fmt.Errorf("failed to load election: %w", err)
	}

	if election.Status != models.StatusActive {
		return models.VoteConfirmation{}, ErrElectionNotActive
	}

	now := s.now()
	if now.Before(election.StartDate) || now.After(election.EndDate) {
		return models.VoteConfirmation{}, ErrOutsideVotingWindow
	}

	voted, err := s.eligibility.HasVoted(voter.ID, input.ElectionID)
	if err != nil {
		return models.VoteConfirmation{}, fmt.Errorf("failed to check eligibility: %w", err)
	}
	if voted {
		return models.VoteConfirmation{}, ErrAlreadyVoted
	}

	candidates, err := s.candidates.CandidatesByElection(input.ElectionID)
	if err != nil {
		return models.VoteConfirmation{}, fmt.Errorf("failed to load candidates: %w", err)
	}

	valid := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		valid[c.ID] = true
	}
	if input.CandidateID != "" && !valid[input.CandidateID] {
		return models.VoteConfirmation{}, ErrInvalidCandidate
	}
	for _, id := range input.Preferences {
		if !valid[id] {
			return models.VoteConfirmation{}, fmt.Errorf("%w: %s", ErrInvalidCandidate, id)
		}
	}

	ballot, err := NewBallot(election.Type, input.ElectionID, input.CandidateID, input.Preferences)
	if err != nil {
		return models.VoteConfirmation{}, err
	}

	rule, err := strategy.ForType(election.Type)
	if err != nil {
		return models.VoteConfirmation{}, fmt.Errorf("%w: %v", ErrInvariant, err)
	}
	if !rule.ValidateBallot(ballot, len(candidates)) {
		return models.VoteConfirmation{}, ErrInvalidBallot
	}

	// Anonymize from the validated ballot's preference list, not the
	// raw input, so the persisted shape is exactly the shape the
	// counting rule accepted.
	anonymous, confirmation, err := Anonymize(voter.ID, input.ElectionID, "", ballot.Preferences)
	if err != nil {
		return models.VoteConfirmation{}, err
	}

	if !VerifyAnonymity(anonymous) {
		return models.VoteConfirmation{}, fmt.Errorf("%w: ballot anonymity verification failed", ErrInvariant)
	}

	// The store's uniqueness constraint on (voter, election) is the
	// real double-vote guard: claiming the mark before writing the
	// ballot means a concurrent cast by the same voter loses the race
	// here, before anything it submitted reaches the tally.
	if err := s.eligibility.MarkVoted(voter.ID, input.ElectionID, confirmation.ConfirmedAt); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return models.VoteConfirmation{}, ErrAlreadyVoted
		}
		return models.VoteConfirmation{}, fmt.Errorf("failed to mark voter as voted: %w", err)
	}

	if err := s.ballots.SaveBallot(anonymous); err != nil {
		return models.VoteConfirmation{}, fmt.Errorf("failed to save ballot: %w", err)
	}

	if err := s.confirmations.SaveConfirmation(confirmation); err != nil {
		return models.VoteConfirmation{}, fmt.Errorf("failed to save confirmation: %w", err)
	}

	slog.Info("vote cast", "election_id", input.ElectionID, "ballot_id", anonymous.ID)

	return confirmation, nil
}

// CalculateResults tabulates a closed election under its counting rule.
// Pure over the stored ballots: repeated calls with no intervening
// writes return identical output.
func (s *Service) CalculateResults(electionID string) ([]models.Result, error) {
	election, err := s.elections.Election(electionID)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrElectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load election: %w", err)
	}

	if election.Status != models.StatusClosed {
		return nil, ErrElectionNotClosed
	}

	ballots, err := s.ballots.BallotsByElection(electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ballots: %w", err)
	}

	candidates, err := s.candidates.CandidatesByElection(electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	rule, err := strategy.ForType(election.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvariant, err)
	}

	return rule.CalculateResults(ballots, candidates), nil
}

// HasVoted reports whether the voter already cast a ballot in the
// election.
func (s *Service) HasVoted(voterID, electionID string) (bool, error) {
	return s.eligibility.HasVoted(voterID, electionID)
}

// VoteCount returns the number of ballots stored for an election.
func (s *Service) VoteCount(electionID string) (int, error) {
	return s.ballots.BallotCount(electionID)
}

// Confirmations returns the voter's receipts, newest first. Receipts
// carry no vote content.
func (s *Service) Confirmations(voterID string) ([]models.VoteConfirmation, error) {
	return s.confirmations.ConfirmationsByVoter(voterID)
}
