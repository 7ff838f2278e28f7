// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package models

import "errors"

// Sentinel errors every store implementation returns so callers can
// translate storage outcomes into domain errors without inspecting
// driver-specific failures.
var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when an insert violates a uniqueness
	// constraint, e.g. a second eligibility mark for the same
	// (voter, election) pair or a second tie resolution.
	ErrConflict = errors.New("record already exists")
)
