// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/consensusvote/consensus/models"
)

func (s *Store) SaveVoter(v models.Voter) error {
	_, err := s.db.Exec(
		`INSERT INTO voters (id, name, email, registration_status, registered_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		v.ID, v.Name, v.Email, v.RegistrationStatus, v.RegisteredAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrConflict
		}
		return fmt.Errorf("failed to save voter: %w", err)
	}
	return nil
}

func (s *Store) Voter(id string) (models.Voter, error) {
	var v models.Voter
	err := s.db.QueryRow(
		`SELECT id, name, email, registration_status, registered_at FROM voters WHERE id = $1`, id,
	).Scan(&v.ID, &v.Name, &v.Email, &v.RegistrationStatus, &v.RegisteredAt)
	if err == sql.ErrNoRows {
		return models.Voter{}, models.ErrNotFound
	}
	if err != nil {
		return models.Voter{}, fmt.Errorf("failed to load voter: %w", err)
	}
	return v, nil
}

func (s *Store) UpdateVoterStatus(id, status string) error {
	res, err := s.db.Exec(
		`UPDATE voters SET registration_status = $1 WHERE id = $2`, status, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update voter status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update voter status: %w", err)
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (s *Store) Voters() ([]models.Voter, error) {
	rows, err := s.db.Query(
		`SELECT id, name, email, registration_status, registered_at
		 FROM voters ORDER BY registered_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list voters: %w", err)
	}
	defer rows.Close()

	voters := []models.Voter{}
	for rows.Next() {
		var v models.Voter
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.RegistrationStatus, &v.RegisteredAt); err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		voters = append(voters, v)
	}
	return voters, rows.Err()
}
