// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/consensusvote/consensus/models"
)

// SaveResolution inserts a tie resolution. The UNIQUE constraint on
// election_id makes a second resolution for the same election fail with
// models.ErrConflict.
func (s *Store) SaveResolution(r models.TieResolution) error {
	_, err := s.db.Exec(
		`INSERT INTO tie_resolutions (id, election_id, kind, winner_candidate_id, resolved_by, resolved_at, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, r.ElectionID, r.Kind, r.WinnerCandidateID, r.ResolvedBy, r.ResolvedAt, r.Notes,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrConflict
		}
		return fmt.Errorf("failed to save resolution: %w", err)
	}
	return nil
}

func (s *Store) ResolutionByElection(electionID string) (models.TieResolution, error) {
	var r models.TieResolution
	var winner sql.NullString
	err := s.db.QueryRow(
		`SELECT id, election_id, kind, winner_candidate_id, resolved_by, resolved_at, notes
		 FROM tie_resolutions WHERE election_id = $1`, electionID,
	).Scan(&r.ID, &r.ElectionID, &r.Kind, &winner, &r.ResolvedBy, &r.ResolvedAt, &r.Notes)
	if err == sql.ErrNoRows {
		return models.TieResolution{}, models.ErrNotFound
	}
	if err != nil {
		return models.TieResolution{}, fmt.Errorf("failed to load resolution: %w", err)
	}
	if winner.Valid {
		w := winner.String
		r.WinnerCandidateID = &w
	}
	return r, nil
}
