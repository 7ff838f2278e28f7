// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package election

import (
	"errors"
	"testing"

	"github.com/consensusvote/consensus/models"
	"github.com/consensusvote/consensus/testutil"
)

func tiedResults() []models.Result {
	return []models.Result{
		{CandidateID: "c1", CandidateName: "Alice", Votes: 2, Tied: true},
		{CandidateID: "c2", CandidateName: "Bob", Votes: 2, Tied: true},
		{CandidateID: "c3", CandidateName: "Carol", Votes: 1},
	}
}

func fixedResults(results []models.Result) ResultsFunc {
	return func(string) ([]models.Result, error) { return results, nil }
}

func TestResolveTieManual(t *testing.T) {
	s := testutil.SetupTestStore(t)
	e := testutil.CreateTestElection(t, s, models.TypeFPTP, models.StatusClosed)

	resolver := NewTieResolver(s, s, fixedResults(tiedResults()))

	resolution, err := resolver.Resolve(ResolveTieInput{
		ElectionID:  e.ID,
		Kind:        models.ResolutionManual,
		CandidateID: "c2",
		ResolvedBy:  "admin",
		Notes:       "bylaw 4.2",
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if resolution.WinnerCandidateID == nil || *resolution.WinnerCandidateID != "c2" {
		t.Errorf("winner = %v, want c2", resolution.WinnerCandidateID)
	}

	stored, err := resolver.Resolution(e.ID)
	if err != nil {
		t.Fatalf("Resolution() error = %v", err)
	}
	if stored.Kind != models.ResolutionManual || stored.Notes != "bylaw 4.2" {
		t.Errorf("stored resolution = %+v", stored)
	}
}

func TestResolveTieManualRequiresTiedCandidate(t *testing.T) {
	s := testutil.SetupTestStore(t)
	e := testutil.CreateTestElection(t, s, models.TypeFPTP, models.StatusClosed)

	resolver := NewTieResolver(s, s, fixedResults(tiedResults()))

	// c3 is in the results but not part of the tie
	_, err := resolver.Resolve(ResolveTieInput{
		ElectionID:  e.ID,
		Kind:        models.ResolutionManual,
		CandidateID: "c3",
		ResolvedBy:  "admin",
	})
	if !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("Resolve() error = %v, want ErrInvalidSelection", err)
	}

	_, err = resolver.Resolve(ResolveTieInput{
		ElectionID: e.ID,
		Kind:       models.ResolutionManual,
		ResolvedBy: "admin",
	})
	if !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("Resolve() without candidate error = %v, want ErrInvalidSelection", err)
	}
}

func TestResolveTieRandomPicksFromTiedSet(t *testing.T) {
	s := testutil.SetupTestStore(t)
	e := testutil.CreateTestElection(t, s, models.TypeFPTP, models.StatusClosed)

	resolver := NewTieResolver(s, s, fixedResults(tiedResults()))

	resolution, err := resolver.Resolve(ResolveTieInput{
		ElectionID: e.ID,
		Kind:       models.ResolutionRandom,
		ResolvedBy: "admin",
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	if resolution.WinnerCandidateID == nil {
		t.Fatal("random resolution has no winner")
	}
	winner := *resolution.WinnerCandidateID
	if winner != "c1" && winner != "c2" {
		t.Errorf("winner = %s, want one of the tied candidates", winner)
	}
}

func TestResolveTieRecall(t *testing.T) {
	s := testutil.SetupTestStore(t)
	e := testutil.CreateTestElection(t, s, models.TypeFPTP, models.StatusClosed)

	resolver := NewTieResolver(s, s, fixedResults(tiedResults()))

	resolution, err := resolver.Resolve(ResolveTieInput{
		ElectionID: e.ID,
		Kind:       models.ResolutionRecall,
		ResolvedBy: "admin",
	})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	// Recall voids the result: no winner is recorded
	if resolution.WinnerCandidateID != nil {
		t.Errorf("recall winner = %v, want nil", resolution.WinnerCandidateID)
	}
}

func TestResolveTiePreconditions(t *testing.T) {
	s := testutil.SetupTestStore(t)

	t.Run("election must exist", func(t *testing.T) {
		resolver := NewTieResolver(s, s, fixedResults(tiedResults()))
		_, err := resolver.Resolve(ResolveTieInput{ElectionID: "missing", Kind: models.ResolutionRandom})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("election must be closed", func(t *testing.T) {
		active := testutil.CreateTestElection(t, s, models.TypeFPTP, models.StatusActive)
		resolver := NewTieResolver(s, s, fixedResults(tiedResults()))
		_, err := resolver.Resolve(ResolveTieInput{ElectionID: active.ID, Kind: models.ResolutionRandom})
		if !errors.Is(err, ErrNotClosed) {
			t.Errorf("error = %v, want ErrNotClosed", err)
		}
	})

	t.Run("no tie means nothing to resolve", func(t *testing.T) {
		closed := testutil.CreateTestElection(t, s, models.TypeFPTP, models.StatusClosed)
		untied := []models.Result{
			{CandidateID: "c1", Votes: 3, Winner: true},
			{CandidateID: "c2", Votes: 1},
		}
		resolver := NewTieResolver(s, s, fixedResults(untied))
		_, err := resolver.Resolve(ResolveTieInput{ElectionID: closed.ID, Kind: models.ResolutionRandom})
		if !errors.Is(err, ErrNoTie) {
			t.Errorf("error = %v, want ErrNoTie", err)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		closed := testutil.CreateTestElection(t, s, models.TypeFPTP, models.StatusClosed)
		resolver := NewTieResolver(s, s, fixedResults(tiedResults()))
		_, err := resolver.Resolve(ResolveTieInput{ElectionID: closed.ID, Kind: "COIN_FLIP"})
		if !errors.Is(err, ErrUnknownKind) {
			t.Errorf("error = %v, want ErrUnknownKind", err)
		}
	})
}

func TestResolveTieOnlyOnce(t *testing.T) {
	s := testutil.SetupTestStore(t)
	e := testutil.CreateTestElection(t, s, models.TypeFPTP, models.StatusClosed)

	resolver := NewTieResolver(s, s, fixedResults(tiedResults()))

	if _, err := resolver.Resolve(ResolveTieInput{
		ElectionID:  e.ID,
		Kind:        models.ResolutionManual,
		CandidateID: "c1",
		ResolvedBy:  "admin",
	}); err != nil {
		t.Fatalf("first Resolve() error = %v", err)
	}

	_, err := resolver.Resolve(ResolveTieInput{
		ElectionID:  e.ID,
		Kind:        models.ResolutionManual,
		CandidateID: "c2",
		ResolvedBy:  "admin",
	})
	if !errors.Is(err, ErrAlreadyResolved) {
		t.Errorf("second Resolve() error = %v, want ErrAlreadyResolved", err)
	}

	// The first resolution stands
	stored, err := resolver.Resolution(e.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.WinnerCandidateID == nil || *stored.WinnerCandidateID != "c1" {
		t.Errorf("stored winner = %v, want c1", stored.WinnerCandidateID)
	}
}
