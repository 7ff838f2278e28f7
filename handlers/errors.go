// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/consensusvote/consensus/election"
	"github.com/consensusvote/consensus/middleware"
	"github.com/consensusvote/consensus/voting"
)

// writeVotingError maps a casting or tabulation error to an HTTP status.
// Every precondition failure surfaces as the service's own message so
// clients see the proximate cause.
func writeVotingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, voting.ErrElectionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, voting.ErrVoterNotApproved):
		middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, voting.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, voting.ErrElectionNotActive),
		errors.Is(err, voting.ErrOutsideVotingWindow),
		errors.Is(err, voting.ErrElectionNotClosed):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, voting.ErrInvalidCandidate),
		errors.Is(err, voting.ErrInvalidBallot):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("vote request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}

// writeElectionError maps a lifecycle or tie-resolution error to an
// HTTP status.
func writeElectionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, election.ErrNotFound),
		errors.Is(err, election.ErrCandidateNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, election.ErrNotDraft),
		errors.Is(err, election.ErrInsufficientCandidates),
		errors.Is(err, election.ErrNotClosed),
		errors.Is(err, election.ErrNoTie),
		errors.Is(err, election.ErrAlreadyResolved):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, election.ErrInvalidDates),
		errors.Is(err, election.ErrStartDateInPast),
		errors.Is(err, election.ErrUnknownType),
		errors.Is(err, election.ErrInvalidSelection),
		errors.Is(err, election.ErrUnknownKind):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("election request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
