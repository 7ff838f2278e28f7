// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

// Package store implements SQL-backed persistence for elections,
// candidates, ballots, voters, eligibility records, vote confirmations,
// tie resolutions and the lifecycle audit log.
//
// It supports two drivers: modernc.org/sqlite (pure Go, including
// in-memory databases for tests) and lib/pq for PostgreSQL. Methods
// return models.ErrNotFound for missing rows and models.ErrConflict for
// uniqueness violations, so callers never see raw driver errors for
// those two outcomes.
//
// Ballots and vote confirmations live in unrelated tables. The ballots
// table has no voter column at all; the link between a voter and their
// vote content does not exist anywhere in the schema.
package store
