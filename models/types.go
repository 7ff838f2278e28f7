// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package models

import "time"

// Election status constants
const (
	StatusDraft  = "DRAFT"
	StatusActive = "ACTIVE"
	StatusClosed = "CLOSED"
)

// Election type (counting rule) constants
const (
	TypeFPTP         = "FPTP"
	TypeSTV          = "STV"
	TypeAV           = "AV"
	TypePreferential = "PREFERENTIAL"
)

// Voter registration status constants
const (
	RegistrationPending   = "PENDING"
	RegistrationApproved  = "APPROVED"
	RegistrationRejected  = "REJECTED"
	RegistrationSuspended = "SUSPENDED"
)

// Tie resolution kind constants
const (
	ResolutionRandom = "RANDOM"
	ResolutionManual = "MANUAL"
	ResolutionRecall = "RECALL"
)

// Request types

type CreateElectionRequest struct {
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description string    `json:"description"`
}

type AddCandidateRequest struct {
	Name      string `json:"name"`
	Party     string `json:"party"`
	Biography string `json:"biography"`
}

type CastVoteRequest struct {
	CandidateID string   `json:"candidate_id,omitempty"`
	Preferences []string `json:"preferences,omitempty"`
}

type ResolveTieRequest struct {
	Kind        string `json:"kind"`
	CandidateID string `json:"candidate_id,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type RegisterVoterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateVoterStatusRequest struct {
	Status string `json:"status"`
}

// Response types

type CreateElectionResponse struct {
	Election Election `json:"election"`
	AdminKey string   `json:"admin_key"`
}

type AddCandidateResponse struct {
	Candidate Candidate `json:"candidate"`
}

type CastVoteResponse struct {
	Confirmation VoteConfirmation `json:"confirmation"`
}

type ResultsResponse struct {
	Election    Election       `json:"election"`
	Results     []Result       `json:"results"`
	BallotCount int            `json:"ballot_count"`
	Resolution  *TieResolution `json:"resolution,omitempty"`
}

type HasVotedResponse struct {
	HasVoted bool `json:"has_voted"`
}

type VoteCountResponse struct {
	BallotCount int `json:"ballot_count"`
}

// Domain types

type Election struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Candidate struct {
	ID         string `json:"id"`
	ElectionID string `json:"election_id"`
	Name       string `json:"name"`
	Party      string `json:"party"`
	Biography  string `json:"biography"`
}

// Ballot is the anonymous record of one vote. It carries no voter
// reference of any kind; the pairing with the voter exists only in the
// separate VoteConfirmation.
type Ballot struct {
	ID          string    `json:"id"`
	ElectionID  string    `json:"election_id"`
	Preferences []string  `json:"preferences"`
	CastAt      time.Time `json:"cast_at"`
}

// VoteConfirmation proves a voter cast a ballot without recording what
// was chosen. It shares no field with the ballot other than the election.
type VoteConfirmation struct {
	ID          string    `json:"id"`
	VoterID     string    `json:"voter_id"`
	ElectionID  string    `json:"election_id"`
	ReceiptCode string    `json:"receipt_code"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

type Voter struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	RegistrationStatus string    `json:"registration_status"`
	RegisteredAt       time.Time `json:"registered_at"`
}

type VoterEligibility struct {
	VoterID    string     `json:"voter_id"`
	ElectionID string     `json:"election_id"`
	HasVoted   bool       `json:"has_voted"`
	VotedAt    *time.Time `json:"voted_at,omitempty"`
}

type TieResolution struct {
	ID                string    `json:"id"`
	ElectionID        string    `json:"election_id"`
	Kind              string    `json:"kind"`
	WinnerCandidateID *string   `json:"winner_candidate_id"`
	ResolvedBy        string    `json:"resolved_by"`
	ResolvedAt        time.Time `json:"resolved_at"`
	Notes             string    `json:"notes,omitempty"`
}

// Result is computed from the ballot set on every request, never stored.
type Result struct {
	CandidateID   string  `json:"candidate_id"`
	CandidateName string  `json:"candidate_name"`
	Votes         int     `json:"votes"`
	Percentage    float64 `json:"percentage"`
	Winner        bool    `json:"winner"`
	Tied          bool    `json:"tied"`
}

// ElectionEvent describes one lifecycle transition.
type ElectionEvent struct {
	Election       Election  `json:"election"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	Timestamp      time.Time `json:"timestamp"`
}

type AuditEntry struct {
	ElectionID     string    `json:"election_id"`
	ElectionName   string    `json:"election_name"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	Timestamp      time.Time `json:"timestamp"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
