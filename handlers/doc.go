// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

/*
Package handlers contains HTTP request handlers for the Consensus API.

# Handler Types

Each handler is a struct with service and config dependencies:

  - ElectionHandler: Election lifecycle, candidates, results, tie resolution
  - VotingHandler: Vote casting, receipts, ballot counts
  - VoterHandler: Voter registration and approval

Handlers are created via constructor functions:

	electionHandler := handlers.NewElectionHandler(elections, votes, ties, audit, cfg)

# Election Lifecycle

Elections progress through three states: DRAFT → ACTIVE → CLOSED

	POST /api/elections                → CreateElection (returns admin_key)
	POST /api/elections/{id}/candidates → AddCandidate (draft only)
	POST /api/elections/{id}/activate   → ActivateElection (needs 2+ candidates)
	POST /api/elections/{id}/close      → CloseElection

Admin operations require the X-Admin-Key header. The key is derived
from the election ID with HMAC, returned once at creation, never
stored.

# Voting Flow

Voters authenticate with the X-Voter-ID header:

	POST /api/voters                     → RegisterVoter (starts PENDING)
	PUT  /api/voters/{id}/status         → UpdateVoterStatus (registry admin)
	POST /api/elections/{id}/votes       → CastVote (returns confirmation receipt)
	GET  /api/voters/me/confirmations    → ListConfirmations

Casting severs the voter identity from the ballot: the stored ballot
has no voter reference, and the returned confirmation has no vote
content.

# Results

Results are sealed until the election closes:

	GET /api/elections/{id}/results     → 409 until CLOSED
	POST /api/elections/{id}/resolve-tie → break an exact top tie

Tabulation recomputes from the stored ballots on every request under
the election's counting rule (FPTP, AV or STV).
*/
package handlers
