// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package strategy

import (
	"sort"

	"github.com/consensusvote/consensus/models"
)

// Plurality implements first-past-the-post counting: each ballot names
// exactly one candidate and the highest tally wins outright.
type Plurality struct{}

func (Plurality) CalculateResults(ballots []models.Ballot, candidates []models.Candidate) []models.Result {
	counts := make(map[string]int, len(candidates))
	for _, c := range candidates {
		counts[c.ID] = 0
	}

	for _, b := range ballots {
		if len(b.Preferences) > 0 {
			counts[b.Preferences[0]]++
		}
	}

	total := len(ballots)
	results := make([]models.Result, 0, len(candidates))
	for _, c := range candidates {
		votes := counts[c.ID]
		results = append(results, models.Result{
			CandidateID:   c.ID,
			CandidateName: c.Name,
			Votes:         votes,
			Percentage:    percentage(votes, total),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Votes != results[j].Votes {
			return results[i].Votes > results[j].Votes
		}
		return results[i].CandidateID < results[j].CandidateID
	})

	// An exact tie at the top means no winner: every sharer is flagged
	// and admin tie resolution becomes mandatory.
	if len(results) > 0 && results[0].Votes > 0 {
		topVotes := results[0].Votes
		tied := 0
		for i := range results {
			if results[i].Votes == topVotes {
				tied++
			}
		}
		if tied > 1 {
			for i := range results {
				if results[i].Votes == topVotes {
					results[i].Tied = true
				}
			}
		} else {
			results[0].Winner = true
		}
	}

	return results
}

// ValidateBallot requires exactly one selected candidate.
func (Plurality) ValidateBallot(ballot models.Ballot, _ int) bool {
	return len(ballot.Preferences) == 1
}
