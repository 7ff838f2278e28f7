// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package strategy

import (
	"fmt"

	"github.com/consensusvote/consensus/models"
)

// Strategy is one counting rule: a pure tabulation over the ballot set
// plus shape validation for ballots cast under that rule.
type Strategy interface {
	// CalculateResults tabulates the ballots and returns results sorted
	// descending by vote count, with winner and tie flags set.
	CalculateResults(ballots []models.Ballot, candidates []models.Candidate) []models.Result

	// ValidateBallot reports whether the ballot is properly formed for
	// this counting rule.
	ValidateBallot(ballot models.Ballot, candidateCount int) bool
}

// ForType returns the strategy for an election's counting rule.
// Unknown rules are an error, never a silent default.
func ForType(electionType string) (Strategy, error) {
	switch electionType {
	case models.TypeFPTP:
		return Plurality{}, nil
	case models.TypeAV:
		return InstantRunoff{}, nil
	case models.TypeSTV, models.TypePreferential:
		return SingleTransferable{}, nil
	default:
		return nil, fmt.Errorf("no voting strategy for election type %q", electionType)
	}
}

// hasDuplicates reports whether any candidate ID appears twice in the
// preference list.
func hasDuplicates(preferences []string) bool {
	seen := make(map[string]bool, len(preferences))
	for _, id := range preferences {
		if seen[id] {
			return true
		}
		seen[id] = true
	}
	return false
}

// percentage converts a tally to a share of total ballots, 0 when the
// election received no ballots.
func percentage(votes, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(votes) / float64(total) * 100
}

// currentPreference returns the ballot's first preference that has not
// been eliminated, or "" when the ballot is exhausted. Recomputed from
// scratch each round so tabulation stays pure.
func currentPreference(b models.Ballot, eliminated map[string]bool) string {
	for _, id := range b.Preferences {
		if !eliminated[id] {
			return id
		}
	}
	return ""
}

// lowestCandidate returns the active candidate with the fewest votes.
// Ties for elimination break toward the lowest candidate ID so rounds
// are deterministic.
func lowestCandidate(counts map[string]int) string {
	lowest := ""
	for id, votes := range counts {
		if lowest == "" || votes < counts[lowest] || (votes == counts[lowest] && id < lowest) {
			lowest = id
		}
	}
	return lowest
}
