// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package voting

import "errors"

// Precondition errors returned to callers. Each maps to one fail-fast
// check in CastVote or CalculateResults and is safe to show to the
// end user as the proximate cause.
var (
	ErrVoterNotApproved    = errors.New("voter is not approved")
	ErrElectionNotFound    = errors.New("election not found")
	ErrElectionNotActive   = errors.New("election is not active")
	ErrOutsideVotingWindow = errors.New("election is not currently open for voting")
	ErrAlreadyVoted        = errors.New("voter has already voted in this election")
	ErrInvalidCandidate    = errors.New("candidate does not belong to this election")
	ErrInvalidBallot       = errors.New("invalid ballot: each candidate needs a unique ranking with no duplicates")
	ErrElectionNotClosed   = errors.New("results are only available for closed elections")
)

// ErrInvariant marks failures that indicate a programming error rather
// than bad input: an anonymity check failing after construction, or an
// unknown counting rule reaching the factory from the store. These are
// wrapped, never swallowed, and callers should treat them as fatal for
// the request.
var ErrInvariant = errors.New("internal invariant violation")
