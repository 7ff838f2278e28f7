// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package election

import "errors"

var (
	ErrNotFound               = errors.New("election not found")
	ErrCandidateNotFound      = errors.New("candidate not found")
	ErrNotDraft               = errors.New("election is not in draft")
	ErrInsufficientCandidates = errors.New("election must have at least 2 candidates")
	ErrInvalidDates           = errors.New("end date must be after start date")
	ErrStartDateInPast        = errors.New("start date cannot be in the past")
	ErrUnknownType            = errors.New("unknown election type")
)

// Tie resolution errors.
var (
	ErrNotClosed        = errors.New("election must be closed to resolve ties")
	ErrNoTie            = errors.New("no tie to resolve in this election")
	ErrAlreadyResolved  = errors.New("tie has already been resolved")
	ErrInvalidSelection = errors.New("selected candidate is not among the tied candidates")
	ErrUnknownKind      = errors.New("unknown resolution kind")
)
