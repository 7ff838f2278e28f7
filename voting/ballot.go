// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package voting

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/consensusvote/consensus/models"
)

// NewBallot builds a ballot shaped for the election's counting rule.
// Plurality elections take a single candidate; ranked elections take a
// non-empty preference list. Unknown rules fail closed.
func NewBallot(electionType, electionID, candidateID string, preferences []string) (models.Ballot, error) {
	ballot := models.Ballot{
		ID:         uuid.NewString(),
		ElectionID: electionID,
		CastAt:     time.Now(),
	}

	switch electionType {
	case models.TypeFPTP:
		if candidateID == "" {
			return models.Ballot{}, fmt.Errorf("%w: FPTP ballots require a candidate", ErrInvalidBallot)
		}
		ballot.Preferences = []string{candidateID}

	case models.TypeSTV, models.TypeAV, models.TypePreferential:
		if len(preferences) == 0 {
			return models.Ballot{}, fmt.Errorf("%w: %s ballots require ranked preferences", ErrInvalidBallot, electionType)
		}
		ballot.Preferences = append([]string(nil), preferences...)

	default:
		return models.Ballot{}, fmt.Errorf("%w: unknown election type %q", ErrInvariant, electionType)
	}

	return ballot, nil
}
