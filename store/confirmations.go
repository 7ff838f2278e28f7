// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package store

import (
	"fmt"

	"github.com/consensusvote/consensus/models"
)

func (s *Store) SaveConfirmation(c models.VoteConfirmation) error {
	_, err := s.db.Exec(
		`INSERT INTO vote_confirmations (id, voter_id, election_id, receipt_code, confirmed_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.VoterID, c.ElectionID, c.ReceiptCode, c.ConfirmedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrConflict
		}
		return fmt.Errorf("failed to save confirmation: %w", err)
	}
	return nil
}

func (s *Store) ConfirmationsByVoter(voterID string) ([]models.VoteConfirmation, error) {
	rows, err := s.db.Query(
		`SELECT id, voter_id, election_id, receipt_code, confirmed_at
		 FROM vote_confirmations WHERE voter_id = $1 ORDER BY confirmed_at DESC`, voterID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmations: %w", err)
	}
	defer rows.Close()

	confirmations := []models.VoteConfirmation{}
	for rows.Next() {
		var c models.VoteConfirmation
		if err := rows.Scan(&c.ID, &c.VoterID, &c.ElectionID, &c.ReceiptCode, &c.ConfirmedAt); err != nil {
			return nil, fmt.Errorf("failed to scan confirmation: %w", err)
		}
		confirmations = append(confirmations, c)
	}
	return confirmations, rows.Err()
}
