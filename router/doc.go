// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

/*
Package router defines HTTP routes for the Consensus API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(elections, votes, ties, audit, voters, cfg)

# Endpoints

Health:

	GET /health

Election management (admin, requires X-Admin-Key):

	POST   /api/elections                              - Create election
	DELETE /api/elections/{id}                         - Delete draft election
	POST   /api/elections/{id}/candidates              - Add candidate
	DELETE /api/elections/{id}/candidates/{candidateID} - Remove candidate
	POST   /api/elections/{id}/activate                - Open for voting
	POST   /api/elections/{id}/close                   - Close voting
	POST   /api/elections/{id}/resolve-tie             - Break a tie
	GET    /api/elections/{id}/audit                   - Lifecycle audit log

Voting (requires X-Voter-ID):

	POST /api/elections/{id}/votes      - Cast a vote
	GET  /api/elections/{id}/has-voted  - Check participation
	GET  /api/voters/me/confirmations   - Vote receipts

Public:

	GET /api/elections                  - List elections
	GET /api/elections/{id}             - Election info
	GET /api/elections/{id}/candidates  - Candidate list
	GET /api/elections/{id}/results     - Results (closed only)
	GET /api/elections/{id}/vote-count  - Ballot count

Voter registry:

	POST /api/voters             - Register (starts PENDING)
	GET  /api/voters             - List voters (registry admin)
	GET  /api/voters/{id}        - Voter info
	PUT  /api/voters/{id}/status - Approve/reject/suspend (registry admin)

# Handler Initialization

The router creates handler instances with dependency injection:

	electionHandler := handlers.NewElectionHandler(elections, votes, ties, audit, cfg)
	votingHandler := handlers.NewVotingHandler(votes, voters)
	voterHandler := handlers.NewVoterHandler(voters, cfg)
*/
package router
