// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

/*
Package strategy implements the counting rules as pure functions over a
ballot set.

# Strategies

  - Plurality (FPTP): single-choice ballots, highest tally wins; an
    exact tie at the top flags every sharer and leaves no winner.
  - InstantRunoff (AV): ranked ballots, repeated elimination rounds
    until a majority (total/2 + 1) or a last candidate standing.
  - SingleTransferable (STV, also used for PREFERENTIAL): Droop quota
    on first preferences, with a single elimination-and-redistribution
    round when no one reaches quota.

# Dispatch

Strategies are selected from the election's counting rule:

	s, err := strategy.ForType(election.Type)

Unknown rules return an error rather than defaulting.

# Determinism

Tabulation never mutates ballots: each round recomputes every ballot's
current effective preference from the eliminated set. Elimination ties
break toward the lowest candidate ID, and equal tallies order by
candidate ID, so identical inputs always produce identical output.
*/
package strategy
