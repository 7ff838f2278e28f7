// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/consensusvote/consensus/models"
)

// HasVoted reports whether an eligibility row marks the voter as having
// voted in the election. A missing row means the voter has not voted.
func (s *Store) HasVoted(voterID, electionID string) (bool, error) {
	var hasVoted bool
	err := s.db.QueryRow(
		`SELECT has_voted FROM voter_eligibility WHERE voter_id = $1 AND election_id = $2`,
		voterID, electionID,
	).Scan(&hasVoted)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check eligibility: %w", err)
	}
	return hasVoted, nil
}

// MarkVoted inserts the eligibility row for a voter and election. The
// composite primary key makes a second insert fail, which is the
// database-level guarantee against double voting.
func (s *Store) MarkVoted(voterID, electionID string, votedAt time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO voter_eligibility (voter_id, election_id, has_voted, voted_at)
		 VALUES ($1, $2, $3, $4)`,
		voterID, electionID, true, votedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrConflict
		}
		return fmt.Errorf("failed to mark voted: %w", err)
	}
	return nil
}

// Eligibility returns the stored row, or models.ErrNotFound when the
// voter has no record for the election.
func (s *Store) Eligibility(voterID, electionID string) (models.VoterEligibility, error) {
	var e models.VoterEligibility
	var votedAt sql.NullTime
	err := s.db.QueryRow(
		`SELECT voter_id, election_id, has_voted, voted_at
		 FROM voter_eligibility WHERE voter_id = $1 AND election_id = $2`,
		voterID, electionID,
	).Scan(&e.VoterID, &e.ElectionID, &e.HasVoted, &votedAt)
	if err == sql.ErrNoRows {
		return models.VoterEligibility{}, models.ErrNotFound
	}
	if err != nil {
		return models.VoterEligibility{}, fmt.Errorf("failed to load eligibility: %w", err)
	}
	if votedAt.Valid {
		t := votedAt.Time
		e.VotedAt = &t
	}
	return e, nil
}
