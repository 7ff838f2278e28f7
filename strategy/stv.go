// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package strategy

import (
	"sort"

	"github.com/consensusvote/consensus/models"
)

// SingleTransferable implements a simplified single-winner STV count
// using the Droop quota. If no candidate reaches quota on first
// preferences, the lowest candidate is eliminated and their ballots
// transfer once to the next preference; the highest tally after that
// single redistribution wins. Deliberately not iterated to convergence:
// full STV would change observable results for existing elections.
type SingleTransferable struct{}

func (SingleTransferable) CalculateResults(ballots []models.Ballot, candidates []models.Candidate) []models.Result {
	total := len(ballots)
	quota := total/2 + 1

	counts := make(map[string]int, len(candidates))
	for _, c := range candidates {
		counts[c.ID] = 0
	}
	for _, b := range ballots {
		if len(b.Preferences) > 0 {
			counts[b.Preferences[0]]++
		}
	}

	winner := ""
	for _, c := range candidates {
		if counts[c.ID] >= quota {
			winner = c.ID
			break
		}
	}

	if winner == "" && len(counts) > 1 {
		lowest := lowestCandidate(counts)
		eliminated := map[string]bool{lowest: true}

		for _, b := range ballots {
			if len(b.Preferences) > 0 && b.Preferences[0] == lowest {
				if next := currentPreference(b, eliminated); next != "" {
					counts[next]++
				}
			}
		}
		delete(counts, lowest)

		maxVotes := -1
		for _, c := range candidates {
			if eliminated[c.ID] {
				continue
			}
			if counts[c.ID] > maxVotes || (counts[c.ID] == maxVotes && c.ID < winner) {
				maxVotes = counts[c.ID]
				winner = c.ID
			}
		}
	}

	results := make([]models.Result, 0, len(candidates))
	for _, c := range candidates {
		votes := counts[c.ID]
		results = append(results, models.Result{
			CandidateID:   c.ID,
			CandidateName: c.Name,
			Votes:         votes,
			Percentage:    percentage(votes, total),
			Winner:        c.ID == winner,
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
func (SingleTransferable) ValidateBallot(ballot models.Ballot, _ int) bool {
	if len(ballot.Preferences) == 0 {
		return false
	}
	return !hasDuplicates(ballot.Preferences)
}
