// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"strings"
)

// Store provides SQL-backed persistence for every repository interface
// the services consume. It works against SQLite (modernc, pure Go) or
// PostgreSQL (lib/pq), selected by driver name.
type Store struct {
	db *sql.DB
}

// Open connects to the database and prepares the connection for use.
// driver is "sqlite" or "postgres".
func Open(driver, dsn string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == "sqlite" {
		// One connection: serializes writers and keeps an in-memory
		// database visible across queries.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return &Store{db: db}, nil
}

// Init creates all tables. Safe to call multiple times - uses IF NOT
// EXISTS.
func (s *Store) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// isUniqueViolation recognizes uniqueness-constraint failures from both
// supported drivers so callers see models.ErrConflict instead of raw
// driver errors.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed: UNIQUE") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

const schema = `
-- Elections
CREATE TABLE IF NOT EXISTS elections (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    type TEXT NOT NULL CHECK (type IN ('FPTP', 'STV', 'AV', 'PREFERENTIAL')),
    status TEXT NOT NULL CHECK (status IN ('DRAFT', 'ACTIVE', 'CLOSED')),
    start_date TIMESTAMP NOT NULL,
    end_date TIMESTAMP NOT NULL,
    description TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_elections_status ON elections(status);

-- Candidates
CREATE TABLE IF NOT EXISTS candidates (
    id TEXT PRIMARY KEY,
    election_id TEXT NOT NULL REFERENCES elections(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    party TEXT,
    biography TEXT
);

CREATE INDEX IF NOT EXISTS idx_candidates_election_id ON candidates(election_id);

-- Anonymous ballots: the table has no voter column
CREATE TABLE IF NOT EXISTS ballots (
    id TEXT PRIMARY KEY,
    election_id TEXT NOT NULL REFERENCES elections(id) ON DELETE CASCADE,
    preferences TEXT NOT NULL,
    cast_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ballots_election_id ON ballots(election_id);

-- Vote confirmations: voter identity, no vote content
CREATE TABLE IF NOT EXISTS vote_confirmations (
    id TEXT PRIMARY KEY,
    voter_id TEXT NOT NULL,
    election_id TEXT NOT NULL REFERENCES elections(id) ON DELETE CASCADE,
    receipt_code TEXT NOT NULL DEFAULT '',
    confirmed_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_confirmations_voter_id ON vote_confirmations(voter_id);

-- Voters
CREATE TABLE IF NOT EXISTS voters (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    registration_status TEXT NOT NULL
        CHECK (registration_status IN ('PENDING', 'APPROVED', 'REJECTED', 'SUSPENDED')),
    registered_at TIMESTAMP NOT NULL
);

-- Eligibility: the primary key is the double-vote guard
CREATE TABLE IF NOT EXISTS voter_eligibility (
    voter_id TEXT NOT NULL,
    election_id TEXT NOT NULL REFERENCES elections(id) ON DELETE CASCADE,
    has_voted BOOLEAN NOT NULL,
    voted_at TIMESTAMP,
    PRIMARY KEY (voter_id, election_id)
);

-- Tie resolutions: at most one per election
CREATE TABLE IF NOT EXISTS tie_resolutions (
    id TEXT PRIMARY KEY,
    election_id TEXT NOT NULL UNIQUE REFERENCES elections(id) ON DELETE CASCADE,
    kind TEXT NOT NULL CHECK (kind IN ('RANDOM', 'MANUAL', 'RECALL')),
    winner_candidate_id TEXT,
    resolved_by TEXT NOT NULL,
    resolved_at TIMESTAMP NOT NULL,
    notes TEXT
);

-- Lifecycle audit log
CREATE TABLE IF NOT EXISTS audit_log (
    election_id TEXT NOT NULL,
    election_name TEXT NOT NULL,
    previous_status TEXT NOT NULL,
    new_status TEXT NOT NULL,
    timestamp TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audit_log_election_id ON audit_log(election_id);
`
