// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/consensusvote/consensus/auth"
	"github.com/consensusvote/consensus/middleware"
	"github.com/consensusvote/consensus/models"
	"github.com/consensusvote/consensus/voting"
)

type VotingHandler struct {
	votes  *voting.Service
	voters VoterStore
}

func NewVotingHandler(votes *voting.Service, voters VoterStore) *VotingHandler {
	return &VotingHandler{votes: votes, voters: voters}
}

// requireVoter loads the voter identified by the X-Voter-ID header.
func (h *VotingHandler) requireVoter(w http.ResponseWriter, r *http.Request) (models.Voter, bool) {
	voterID := r.Header.Get("X-Voter-ID")
	if voterID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Voter-ID header required")
		return models.Voter{}, false
	}

	voter, err := h.voters.Voter(voterID)
	if errors.Is(err, models.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Unknown voter")
		return models.Voter{}, false
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return models.Voter{}, false
	}

	return voter, true
}

// CastVote handles POST /api/elections/{id}/votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")

	voter, ok := h.requireVoter(w, r)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CandidateID == "" && len(req.Preferences) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id or preferences required")
		return
	}

	confirmation, err := h.votes.CastVote(voter, voting.CastVoteInput{
		ElectionID:  electionID,
		CandidateID: req.CandidateID,
		Preferences: req.Preferences,
	})
	if err != nil {
		writeVotingError(w, err)
		return
	}

	// Cast source is logged as a hash only. The ballot itself carries
	// no voter or network identity.
	slog.Info("vote accepted",
		"election_id", electionID,
		"client_hash", auth.HashIP(middleware.GetClientIP(r), ""),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{Confirmation: confirmation})
}

// HasVoted handles GET /api/elections/{id}/has-voted
func (h *VotingHandler) HasVoted(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")

	voter, ok := h.requireVoter(w, r)
	if !ok {
		return
	}

	voted, err := h.votes.HasVoted(voter.ID, electionID)
	if err != nil {
		writeVotingError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HasVotedResponse{HasVoted: voted})
}

// VoteCount handles GET /api/elections/{id}/vote-count
func (h *VotingHandler) VoteCount(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")

	count, err := h.votes.VoteCount(electionID)
	if err != nil {
		writeVotingError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteCountResponse{BallotCount: count})
}

// ListConfirmations handles GET /api/voters/me/confirmations
func (h *VotingHandler) ListConfirmations(w http.ResponseWriter, r *http.Request) {
	voter, ok := h.requireVoter(w, r)
	if !ok {
		return
	}

	confirmations, err := h.votes.Confirmations(voter.ID)
	if err != nil {
		writeVotingError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, confirmations)
}
