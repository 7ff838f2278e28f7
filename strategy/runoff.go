// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package strategy

import (
	"sort"

	"github.com/consensusvote/consensus/models"
)

// InstantRunoff implements the alternative vote: repeated rounds of
// first-active-preference counting, eliminating the lowest candidate
// until someone reaches a majority or only one candidate remains.
type InstantRunoff struct{}

func (InstantRunoff) CalculateResults(ballots []models.Ballot, candidates []models.Candidate) []models.Result {
	total := len(ballots)
	majority := total/2 + 1

	eliminated := make(map[string]bool)
	active := len(candidates)
	finalCounts := make(map[string]int)

	for active > 1 {
		// Count each ballot's first preference still in the running.
		// Ballots exhausted past their last active preference sit the
		// round out. Recomputed per round rather than via a stored
		// cursor, so rounds are pure functions of the ballot set.
		roundCounts := make(map[string]int, active)
		for _, c := range candidates {
			if !eliminated[c.ID] {
				roundCounts[c.ID] = 0
			}
		}
		for _, b := range ballots {
			if choice := currentPreference(b, eliminated); choice != "" {
				roundCounts[choice]++
			}
		}
		finalCounts = roundCounts

		majorityFound := false
		for _, votes := range roundCounts {
			if votes >= majority {
				majorityFound = true
				break
			}
		}
		if majorityFound {
			break
		}

		eliminated[lowestCandidate(roundCounts)] = true
		active--
	}

	// Sole remaining candidate wins by elimination even with no counted
	// round behind them.
	if active == 1 {
		for _, c := range candidates {
			if !eliminated[c.ID] {
				if _, ok := finalCounts[c.ID]; !ok {
					finalCounts[c.ID] = 0
				}
			}
		}
	}

	maxVotes := 0
	for _, votes := range finalCounts {
		if votes > maxVotes {
			maxVotes = votes
		}
	}

	results := make([]models.Result, 0, len(candidates))
	for _, c := range candidates {
		votes := finalCounts[c.ID]
		results = append(results, models.Result{
			CandidateID:   c.ID,
			CandidateName: c.Name,
			Votes:         votes,
			Percentage:    percentage(votes, total),
			Winner:        votes == maxVotes && votes > 0,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Votes != results[j].Votes {
			return results[i].Votes > results[j].Votes
		}
		return results[i].CandidateID < results[j].CandidateID
	})

	return results
}

// ValidateBallot requires a non-empty ranking with no duplicates.
func (InstantRunoff) ValidateBallot(ballot models.Ballot, _ int) bool {
	if len(ballot.Preferences) == 0 {
		return false
	}
	return !hasDuplicates(ballot.Preferences)
}
