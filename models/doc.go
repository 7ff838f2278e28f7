// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

	Election         name, counting rule, lifecycle status, voting window
	Candidate        scoped to one election, immutable once active
	Ballot           anonymous ranked choice record, no voter reference
	VoteConfirmation proof of cast tied to a voter, no vote content
	Voter            registration identity with approval status
	VoterEligibility per (voter, election) has-voted flag
	TieResolution    one-per-election record of how a tie was broken
	Result           computed per-candidate tally, never persisted
	ElectionEvent    one lifecycle transition, fanned out to observers
	AuditEntry       persisted trace of a lifecycle transition

# Constants

Election status values:

	StatusDraft  = "DRAFT"
	StatusActive = "ACTIVE"
	StatusClosed = "CLOSED"

Counting rules:

	TypeFPTP, TypeSTV, TypeAV, TypePreferential

Registration statuses:

	RegistrationPending, RegistrationApproved,
	RegistrationRejected, RegistrationSuspended

Tie resolution kinds:

	ResolutionRandom, ResolutionManual, ResolutionRecall

# Store Sentinels

ErrNotFound and ErrConflict are the two outcomes store implementations
report beyond plain failures; service layers translate them into domain
errors (e.g. ErrConflict on an eligibility mark becomes "already voted").
*/
package models
