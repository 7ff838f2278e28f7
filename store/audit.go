// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package store

import (
	"database/sql"
	"fmt"

	"github.com/consensusvote/consensus/models"
)

func (s *Store) SaveAuditEntry(e models.AuditEntry) error {
	_, err := s.db.Exec(
		`INSERT INTO audit_log (election_id, election_name, previous_status, new_status, timestamp)
		 VALUES ($1, $2, $3, $4, $5)`,
		e.ElectionID, e.ElectionName, e.PreviousStatus, e.NewStatus, e.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit entry: %w", err)
	}
	return nil
}

func (s *Store) AuditEntries() ([]models.AuditEntry, error) {
	rows, err := s.db.Query(
		`SELECT election_id, election_name, previous_status, new_status, timestamp
		 FROM audit_log ORDER BY timestamp`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()
	return scanAuditEntries(rows)
}

func (s *Store) AuditEntriesByElection(electionID string) ([]models.AuditEntry, error) {
	rows, err := s.db.Query(
		`SELECT election_id, election_name, previous_status, new_status, timestamp
		 FROM audit_log WHERE election_id = $1 ORDER BY timestamp`, electionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()
	return scanAuditEntries(rows)
}

func scanAuditEntries(rows *sql.Rows) ([]models.AuditEntry, error) {
	entries := []models.AuditEntry{}
	for rows.Next() {
		var e models.AuditEntry
		if err := rows.Scan(&e.ElectionID, &e.ElectionName, &e.PreviousStatus,
			&e.NewStatus, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
