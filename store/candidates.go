// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/consensusvote/consensus/models"
)

func (s *Store) SaveCandidate(c models.Candidate) error {
	_, err := s.db.Exec(
		`INSERT INTO candidates (id, election_id, name, party, biography)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.ElectionID, c.Name, c.Party, c.Biography,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrConflict
		}
		return fmt.Errorf("failed to save candidate: %w", err)
	}
	return nil
}

func (s *Store) Candidate(id string) (models.Candidate, error) {
	var c models.Candidate
	err := s.db.QueryRow(
		`SELECT id, election_id, name, party, biography FROM candidates WHERE id = $1`, id,
	).Scan(&c.ID, &c.ElectionID, &c.Name, &c.Party, &c.Biography)
	if err == sql.ErrNoRows {
		return models.Candidate{}, models.ErrNotFound
	}
	if err != nil {
		return models.Candidate{}, fmt.Errorf("failed to load candidate: %w", err)
	}
	return c, nil
}

func (s *Store) CandidatesByElection(electionID string) ([]models.Candidate, error) {
	rows, err := s.db.Query(
		`SELECT id, election_id, name, party, biography
		 FROM candidates WHERE election_id = $1 ORDER BY name`, electionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := []models.Candidate{}
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.ID, &c.ElectionID, &c.Name, &c.Party, &c.Biography); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

func (s *Store) DeleteCandidate(id string) error {
	res, err := s.db.Exec(`DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}
