// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/consensusvote/consensus/auth"
	"github.com/consensusvote/consensus/cliparse"
	"github.com/consensusvote/consensus/election"
	"github.com/consensusvote/consensus/middleware"
	"github.com/consensusvote/consensus/models"
	"github.com/consensusvote/consensus/voting"
)

type ElectionHandler struct {
	elections *election.Service
	votes     *voting.Service
	ties      *election.TieResolver
	audit     *election.AuditLogger
	cfg       cliparse.Config
}

func NewElectionHandler(elections *election.Service, votes *voting.Service, ties *election.TieResolver, audit *election.AuditLogger, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{
		elections: elections,
		votes:     votes,
		ties:      ties,
		audit:     audit,
		cfg:       cfg,
	}
}

// requireAdmin validates the X-Admin-Key header for an election.
func (h *ElectionHandler) requireAdmin(w http.ResponseWriter, r *http.Request, electionID string) bool {
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(electionID, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}

// CreateElection handles POST /api/elections
func (h *ElectionHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	var req models.CreateElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Type == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "type is required")
		return
	}

	created, err := h.elections.CreateElection(election.CreateElectionInput{
		Name:        req.Name,
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	})
	if err != nil {
		writeElectionError(w, err)
		return
	}

	// The admin key is derived, never stored; this response is the only
	// time the caller can learn it.
	adminKey := auth.GenerateAdminKey(created.ID, h.cfg.AdminKeySalt)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateElectionResponse{
		Election: created,
		AdminKey: adminKey,
	})
}

// ListElections handles GET /api/elections
func (h *ElectionHandler) ListElections(w http.ResponseWriter, r *http.Request) {
	var (
		elections []models.Election
		err       error
	)
	switch r.URL.Query().Get("status") {
	case models.StatusActive:
		elections, err = h.elections.ActiveElections()
	case models.StatusClosed:
		elections, err = h.elections.ClosedElections()
	default:
		elections, err = h.elections.Elections()
	}
	if err != nil {
		writeElectionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, elections)
}

// GetElection handles GET /api/elections/{id}
func (h *ElectionHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")

	found, err := h.elections.Election(electionID)
	if err != nil {
		writeElectionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, found)
}

// AddCandidate handles POST /api/elections/{id}/candidates
func (h *ElectionHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")
	if !h.requireAdmin(w, r, electionID) {
		return
	}

	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	candidate, err := h.elections.AddCandidate(electionID, election.AddCandidateInput{
		Name:      req.Name,
		Party:     req.Party,
		Biography: req.Biography,
	})
	if err != nil {
		writeElectionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.AddCandidateResponse{Candidate: candidate})
}

// ListCandidates handles GET /api/elections/{id}/candidates
func (h *ElectionHandler) ListCandidates(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")

	candidates, err := h.elections.Candidates(electionID)
	if err != nil {
		writeElectionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// RemoveCandidate handles DELETE /api/elections/{id}/candidates/{candidateID}
func (h *ElectionHandler) RemoveCandidate(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")
	if !h.requireAdmin(w, r, electionID) {
		return
	}

	if err := h.elections.RemoveCandidate(electionID, r.PathValue("candidateID")); err != nil {
		writeElectionError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ActivateElection handles POST /api/elections/{id}/activate
func (h *ElectionHandler) ActivateElection(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")
	if !h.requireAdmin(w, r, electionID) {
		return
	}

	if err := h.elections.ActivateElection(electionID); err != nil {
		writeElectionError(w, err)
		return
	}

	activated, err := h.elections.Election(electionID)
	if err != nil {
		writeElectionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, activated)
}

// CloseElection handles POST /api/elections/{id}/close
func (h *ElectionHandler) CloseElection(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")
	if !h.requireAdmin(w, r, electionID) {
		return
	}

	if err := h.elections.CloseElection(electionID); err != nil {
		writeElectionError(w, err)
		return
	}

	closed, err := h.elections.Election(electionID)
	if err != nil {
		writeElectionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, closed)
}

// DeleteElection handles DELETE /api/elections/{id}
func (h *ElectionHandler) DeleteElection(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")
	if !h.requireAdmin(w, r, electionID) {
		return
	}

	if err := h.elections.DeleteElection(electionID); err != nil {
		writeElectionError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetResults handles GET /api/elections/{id}/results
func (h *ElectionHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")

	found, err := h.elections.Election(electionID)
	if err != nil {
		writeElectionError(w, err)
		return
	}

	results, err := h.votes.CalculateResults(electionID)
	if err != nil {
		writeVotingError(w, err)
		return
	}

	count, err := h.votes.VoteCount(electionID)
	if err != nil {
		writeVotingError(w, err)
		return
	}

	resp := models.ResultsResponse{
		Election:    found,
		Results:     results,
		BallotCount: count,
	}

	resolution, err := h.ties.Resolution(electionID)
	if err == nil {
		resp.Resolution = &resolution
	} else if !errors.Is(err, models.ErrNotFound) {
		slog.Error("failed to load tie resolution", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// ResolveTie handles POST /api/elections/{id}/resolve-tie
func (h *ElectionHandler) ResolveTie(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")
	if !h.requireAdmin(w, r, electionID) {
		return
	}

	var req models.ResolveTieRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	resolution, err := h.ties.Resolve(election.ResolveTieInput{
		ElectionID:  electionID,
		Kind:        req.Kind,
		CandidateID: req.CandidateID,
		ResolvedBy:  "admin",
		Notes:       req.Notes,
	})
	if err != nil {
		writeElectionError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, resolution)
}

// GetAuditLog handles GET /api/elections/{id}/audit
func (h *ElectionHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	electionID := r.PathValue("id")
	if !h.requireAdmin(w, r, electionID) {
		return
	}

	entries, err := h.audit.EntriesForElection(electionID)
	if err != nil {
		slog.Error("failed to load audit log", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}
