// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

/*
Package voting implements the vote casting and tabulation orchestrator.

# Casting

CastVote runs a fixed precondition ladder, each failure a distinct
typed error:

 1. voter registration is APPROVED
 2. election exists
 3. election status is ACTIVE
 4. current time is inside [start, end]
 5. voter has not already voted (eligibility lookup)
 6. every referenced candidate belongs to the election
 7. ballot shape is valid for the election's counting rule

On success the submission is split by Anonymize into an anonymous
ballot (vote content, no voter reference) and a confirmation receipt
(voter identity, no vote content); both are persisted and the voter's
eligibility is marked. A uniqueness conflict on the eligibility mark is
translated to ErrAlreadyVoted, so two concurrent casts by one voter
cannot both succeed.

# Tabulation

CalculateResults loads the ballots and candidates of a CLOSED election
and dispatches to the counting rule's strategy. Results are recomputed
from the ballot set on every call, never stored.

# Collaborators

The service consumes small store interfaces (BallotStore,
EligibilityStore, ConfirmationStore, ElectionFinder, CandidateLister)
injected at construction; the store package satisfies all of them.
*/
package voting
