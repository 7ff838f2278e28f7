// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/consensusvote/consensus/auth"
	"github.com/consensusvote/consensus/cliparse"
	"github.com/consensusvote/consensus/middleware"
	"github.com/consensusvote/consensus/models"
)

// VoterStore is the persistence surface the voter handlers need.
type VoterStore interface {
	SaveVoter(v models.Voter) error
	Voter(id string) (models.Voter, error)
	UpdateVoterStatus(id, status string) error
	Voters() ([]models.Voter, error)
}

// registryScope keys the registry-wide admin key. Voter approval is a
// platform action, not tied to any one election.
const registryScope = "voter-registry"

type VoterHandler struct {
	voters VoterStore
	cfg    cliparse.Config
}

func NewVoterHandler(voters VoterStore, cfg cliparse.Config) *VoterHandler {
	return &VoterHandler{voters: voters, cfg: cfg}
}

// RegistryAdminKey returns the admin key that authorizes voter registry
// changes. Printed at startup, never stored.
func RegistryAdminKey(cfg cliparse.Config) string {
	return auth.GenerateAdminKey(registryScope, cfg.AdminKeySalt)
}

// RegisterVoter handles POST /api/voters. New voters start PENDING and
// cannot vote until approved.
func (h *VoterHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "valid email is required")
		return
	}

	voter := models.Voter{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Email:              req.Email,
		RegistrationStatus: models.RegistrationPending,
		RegisteredAt:       time.Now().UTC(),
	}

	if err := h.voters.SaveVoter(voter); err != nil {
		if errors.Is(err, models.ErrConflict) {
			middleware.ErrorResponse(w, http.StatusConflict, "email already registered")
			return
		}
		slog.Error("failed to register voter", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register voter")
		return
	}

	slog.Info("voter registered", "voter_id", voter.ID)

	middleware.JSONResponse(w, http.StatusCreated, voter)
}

// GetVoter handles GET /api/voters/{id}
func (h *VoterHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	voter, err := h.voters.Voter(r.PathValue("id"))
	if errors.Is(err, models.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Voter not found")
		return
	}
	if err != nil {
		slog.Error("failed to load voter", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voter)
}

// ListVoters handles GET /api/voters (registry admin only)
func (h *VoterHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	if !h.requireRegistryAdmin(w, r) {
		return
	}

	voters, err := h.voters.Voters()
	if err != nil {
		slog.Error("failed to list voters", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voters)
}

// UpdateVoterStatus handles PUT /api/voters/{id}/status (registry admin
// only). Moves a voter between PENDING, APPROVED, REJECTED, SUSPENDED.
func (h *VoterHandler) UpdateVoterStatus(w http.ResponseWriter, r *http.Request) {
	if !h.requireRegistryAdmin(w, r) {
		return
	}

	var req models.UpdateVoterStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	switch req.Status {
	case models.RegistrationPending, models.RegistrationApproved,
		models.RegistrationRejected, models.RegistrationSuspended:
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid registration status")
		return
	}

	voterID := r.PathValue("id")
	if err := h.voters.UpdateVoterStatus(voterID, req.Status); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Voter not found")
			return
		}
		slog.Error("failed to update voter status", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return
	}

	slog.Info("voter status updated", "voter_id", voterID, "status", req.Status)

	voter, err := h.voters.Voter(voterID)
	if err != nil {
		slog.Error("failed to load voter", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voter)
}

func (h *VoterHandler) requireRegistryAdmin(w http.ResponseWriter, r *http.Request) bool {
	adminKey := r.Header.Get("X-Admin-Key")
	if err := auth.ValidateAdminKey(registryScope, adminKey, h.cfg.AdminKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}
