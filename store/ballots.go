// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package store

import (
	"encoding/json"
	"fmt"

	"github.com/consensusvote/consensus/models"
)

func (s *Store) SaveBallot(b models.Ballot) error {
	prefs, err := json.Marshal(b.Preferences)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO ballots (id, election_id, preferences, cast_at) VALUES ($1, $2, $3, $4)`,
		b.ID, b.ElectionID, string(prefs), b.CastAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrConflict
		}
		return fmt.Errorf("failed to save ballot: %w", err)
	}
	return nil
}

func (s *Store) BallotsByElection(electionID string) ([]models.Ballot, error) {
	rows, err := s.db.Query(
		`SELECT id, election_id, preferences, cast_at
		 FROM ballots WHERE election_id = $1 ORDER BY cast_at`, electionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list ballots: %w", err)
	}
	defer rows.Close()

	ballots := []models.Ballot{}
	for rows.Next() {
		var b models.Ballot
		var prefs string
		if err := rows.Scan(&b.ID, &b.ElectionID, &prefs, &b.CastAt); err != nil {
			return nil, fmt.Errorf("failed to scan ballot: %w", err)
		}
		if err := json.Unmarshal([]byte(prefs), &b.Preferences); err != nil {
			return nil, fmt.Errorf("failed to decode preferences: %w", err)
		}
		ballots = append(ballots, b)
	}
	return ballots, rows.Err()
}

func (s *Store) BallotCount(electionID string) (int, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM ballots WHERE election_id = $1`, electionID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count ballots: %w", err)
	}
	return count, nil
}
