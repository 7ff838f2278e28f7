// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package router

import (
	"net/http"

	"github.com/consensusvote/consensus/cliparse"
	"github.com/consensusvote/consensus/election"
	"github.com/consensusvote/consensus/handlers"
	"github.com/consensusvote/consensus/middleware"
	"github.com/consensusvote/consensus/voting"
)

func NewRouter(elections *election.Service, votes *voting.Service, ties *election.TieResolver, audit *election.AuditLogger, voters handlers.VoterStore, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	electionHandler := handlers.NewElectionHandler(elections, votes, ties, audit, cfg)
	votingHandler := handlers.NewVotingHandler(votes, voters)
	voterHandler := handlers.NewVoterHandler(voters, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Election management (admin operations)
	mux.HandleFunc("POST /api/elections", middleware.WithLogging(electionHandler.CreateElection))
	mux.HandleFunc("GET /api/elections", middleware.WithLogging(electionHandler.ListElections))
	mux.HandleFunc("GET /api/elections/{id}", middleware.WithLogging(electionHandler.GetElection))
	mux.HandleFunc("DELETE /api/elections/{id}", middleware.WithLogging(electionHandler.DeleteElection))
	mux.HandleFunc("POST /api/elections/{id}/candidates", middleware.WithLogging(electionHandler.AddCandidate))
	mux.HandleFunc("GET /api/elections/{id}/candidates", middleware.WithLogging(electionHandler.ListCandidates))
	mux.HandleFunc("DELETE /api/elections/{id}/candidates/{candidateID}", middleware.WithLogging(electionHandler.RemoveCandidate))
	mux.HandleFunc("POST /api/elections/{id}/activate", middleware.WithLogging(electionHandler.ActivateElection))
	mux.HandleFunc("POST /api/elections/{id}/close", middleware.WithLogging(electionHandler.CloseElection))
	mux.HandleFunc("POST /api/elections/{id}/resolve-tie", middleware.WithLogging(electionHandler.ResolveTie))
	mux.HandleFunc("GET /api/elections/{id}/audit", middleware.WithLogging(electionHandler.GetAuditLog))

	// Voting operations (voter-authenticated)
	mux.HandleFunc("POST /api/elections/{id}/votes", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("GET /api/elections/{id}/has-voted", middleware.WithLogging(votingHandler.HasVoted))
	mux.HandleFunc("GET /api/elections/{id}/vote-count", middleware.WithLogging(votingHandler.VoteCount))
	mux.HandleFunc("GET /api/voters/me/confirmations", middleware.WithLogging(votingHandler.ListConfirmations))

	// Results retrieval (public, sealed until closure)
	mux.HandleFunc("GET /api/elections/{id}/results", middleware.WithLogging(electionHandler.GetResults))

	// Voter registry
	mux.HandleFunc("POST /api/voters", middleware.WithLogging(voterHandler.RegisterVoter))
	mux.HandleFunc("GET /api/voters", middleware.WithLogging(voterHandler.ListVoters))
	mux.HandleFunc("GET /api/voters/{id}", middleware.WithLogging(voterHandler.GetVoter))
	mux.HandleFunc("PUT /api/voters/{id}/status", middleware.WithLogging(voterHandler.UpdateVoterStatus))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("consensus API v1"))
	})

	return mux
}
