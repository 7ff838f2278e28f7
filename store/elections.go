// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/consensusvote/consensus/models"
)

func (s *Store) SaveElection(e models.Election) error {
	_, err := s.db.Exec(
		`INSERT INTO elections (id, name, type, status, start_date, end_date, description, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.Name, e.Type, e.Status, e.StartDate, e.EndDate, e.Description, e.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrConflict
		}
		return fmt.Errorf("failed to save election: %w", err)
	}
	return nil
}

func (s *Store) UpdateElection(e models.Election) error {
	res, err := s.db.Exec(
		`UPDATE elections SET name = $1, type = $2, status = $3, start_date = $4,
		 end_date = $5, description = $6 WHERE id = $7`,
		e.Name, e.Type, e.Status, e.StartDate, e.EndDate, e.Description, e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update election: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update election: %w", err)
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (s *Store) Election(id string) (models.Election, error) {
	var e models.Election
	err := s.db.QueryRow(
		`SELECT id, name, type, status, start_date, end_date, description, created_at
		 FROM elections WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.Type, &e.Status, &e.StartDate, &e.EndDate, &e.Description, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Election{}, models.ErrNotFound
	}
	if err != nil {
		return models.Election{}, fmt.Errorf("failed to load election: %w", err)
	}
	return e, nil
}

func (s *Store) Elections() ([]models.Election, error) {
	rows, err := s.db.Query(
		`SELECT id, name, type, status, start_date, end_date, description, created_at
		 FROM elections ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list elections: %w", err)
	}
	defer rows.Close()
	return scanElections(rows)
}

func (s *Store) ElectionsByStatus(status string) ([]models.Election, error) {
	rows, err := s.db.Query(
		`SELECT id, name, type, status, start_date, end_date, description, created_at
		 FROM elections WHERE status = $1 ORDER BY created_at DESC`, status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list elections: %w", err)
	}
	defer rows.Close()
	return scanElections(rows)
}

func (s *Store) DeleteElection(id string) error {
	res, err := s.db.Exec(`DELETE FROM elections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete election: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete election: %w", err)
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

func scanElections(rows *sql.Rows) ([]models.Election, error) {
	elections := []models.Election{}
	for rows.Next() {
		var e models.Election
		if err := rows.Scan(&e.ID, &e.Name, &e.Type, &e.Status, &e.StartDate,
			&e.EndDate, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan election: %w", err)
		}
		elections = append(elections, e)
	}
	return elections, rows.Err()
}
