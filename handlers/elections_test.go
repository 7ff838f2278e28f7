// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/consensusvote/consensus/auth"
	"github.com/consensusvote/consensus/election"
	"github.com/consensusvote/consensus/models"
	"github.com/consensusvote/consensus/store"
	"github.com/consensusvote/consensus/testutil"
	"github.com/consensusvote/consensus/voting"
)

func newElectionHandler(t *testing.T) (*ElectionHandler, *store.Store) {
	t.Helper()

	s := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()

	emitter := election.NewEmitter()
	audit := election.NewAuditLogger(s)
	emitter.Subscribe(audit)

	elections := election.NewService(s, s, emitter)
	votes := voting.NewService(s, s, s, s, s)
	ties := election.NewTieResolver(s, s, votes.CalculateResults)

	return NewElectionHandler(elections, votes, ties, audit, cfg), s
}

func TestCreateElection(t *testing.T) {
	handler, _ := newElectionHandler(t)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name: "valid election",
			body: models.CreateElectionRequest{
				Name:      "Board Election",
				Type:      models.TypeFPTP,
				StartDate: time.Now(),
				EndDate:   time.Now().Add(24 * time.Hour),
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing name",
			body: models.CreateElectionRequest{
				Type:      models.TypeFPTP,
				StartDate: time.Now(),
				EndDate:   time.Now().Add(24 * time.Hour),
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown type",
			body: models.CreateElectionRequest{
				Name:      "Bad Type",
				Type:      "APPROVAL",
				StartDate: time.Now(),
				EndDate:   time.Now().Add(24 * time.Hour),
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "end before start",
			body: models.CreateElectionRequest{
				Name:      "Bad Dates",
				Type:      models.TypeAV,
				StartDate: time.Now(),
				EndDate:   time.Now().Add(-time.Hour),
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/elections", tt.body, nil)
			w := httptest.NewRecorder()

			handler.CreateElection(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.CreateElectionResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.AdminKey == "" {
					t.Error("Expected non-empty admin_key")
				}
				if resp.Election.Status != models.StatusDraft {
					t.Errorf("Expected DRAFT status, got %s", resp.Election.Status)
				}
			}
		})
	}
}

func TestAddCandidateRequiresAdminKey(t *testing.T) {
	handler, s := newElectionHandler(t)
	cfg := testutil.GetTestConfig()

	e := testutil.CreateTestElection(t, s, models.TypeFPTP, "DRAFT")
	adminKey := auth.GenerateAdminKey(e.ID, cfg.AdminKeySalt)

	t.Run("missing key", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/elections/"+e.ID+"/candidates",
			models.AddCandidateRequest{Name: "Alice"}, nil)
		req.SetPathValue("id", e.ID)
		w := httptest.NewRecorder()

		handler.AddCandidate(w, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("valid key", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/elections/"+e.ID+"/candidates",
			models.AddCandidateRequest{Name: "Alice", Party: "Independent"},
			map[string]string{"X-Admin-Key": adminKey})
		req.SetPathValue("id", e.ID)
		w := httptest.NewRecorder()

		handler.AddCandidate(w, req)
		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.AddCandidateResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Candidate.Name != "Alice" {
			t.Errorf("Expected candidate Alice, got %s", resp.Candidate.Name)
		}
	})
}

func TestActivateElectionFlow(t *testing.T) {
	handler, s := newElectionHandler(t)
	cfg := testutil.GetTestConfig()

	e := testutil.CreateTestElection(t, s, models.TypeFPTP, "DRAFT")
	adminKey := auth.GenerateAdminKey(e.ID, cfg.AdminKeySalt)

	activate := func() *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/api/elections/"+e.ID+"/activate", nil,
			map[string]string{"X-Admin-Key": adminKey})
		req.SetPathValue("id", e.ID)
		w := httptest.NewRecorder()
		handler.ActivateElection(w, req)
		return w
	}

	// Not enough candidates yet
	testutil.AssertStatus(t, activate(), http.StatusConflict)

	testutil.AddTestCandidate(t, s, e.ID, "Alice")
	testutil.AddTestCandidate(t, s, e.ID, "Bob")

	w := activate()
	testutil.AssertStatus(t, w, http.StatusOK)

	var activated models.Election
	testutil.AssertJSON(t, w, &activated)
	if activated.Status != models.StatusActive {
		t.Errorf("Expected ACTIVE, got %s", activated.Status)
	}
}

func TestResultsSealedUntilClosed(t *testing.T) {
	handler, s := newElectionHandler(t)

	e := testutil.CreateTestElection(t, s, models.TypeFPTP, "ACTIVE")
	alice := testutil.AddTestCandidate(t, s, e.ID, "Alice")
	testutil.AddTestCandidate(t, s, e.ID, "Bob")
	testutil.CastTestBallot(t, s, e.ID, []string{alice.ID})

	getResults := func() *httptest.ResponseRecorder {
		req := testutil.MakeRequest("GET", "/api/elections/"+e.ID+"/results", nil, nil)
		req.SetPathValue("id", e.ID)
		w := httptest.NewRecorder()
		handler.GetResults(w, req)
		return w
	}

	// Active election: results are sealed
	testutil.AssertStatus(t, getResults(), http.StatusConflict)

	e.Status = models.StatusClosed
	if err := s.UpdateElection(e); err != nil {
		t.Fatal(err)
	}

	w := getResults()
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.BallotCount != 1 {
		t.Errorf("Expected ballot_count 1, got %d", resp.BallotCount)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[0].CandidateID != alice.ID || !resp.Results[0].Winner {
		t.Errorf("Expected Alice as winner, got %+v", resp.Results[0])
	}
}

func TestResolveTieEndpoint(t *testing.T) {
	handler, s := newElectionHandler(t)
	cfg := testutil.GetTestConfig()

	e := testutil.CreateTestElection(t, s, models.TypeFPTP, "CLOSED")
	alice := testutil.AddTestCandidate(t, s, e.ID, "Alice")
	bob := testutil.AddTestCandidate(t, s, e.ID, "Bob")
	testutil.CastTestBallot(t, s, e.ID, []string{alice.ID})
	testutil.CastTestBallot(t, s, e.ID, []string{bob.ID})

	adminKey := auth.GenerateAdminKey(e.ID, cfg.AdminKeySalt)

	req := testutil.MakeRequest("POST", "/api/elections/"+e.ID+"/resolve-tie",
		models.ResolveTieRequest{Kind: models.ResolutionManual, CandidateID: bob.ID},
		map[string]string{"X-Admin-Key": adminKey})
	req.SetPathValue("id", e.ID)
	w := httptest.NewRecorder()

	handler.ResolveTie(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resolution models.TieResolution
	testutil.AssertJSON(t, w, &resolution)
	if resolution.WinnerCandidateID == nil || *resolution.WinnerCandidateID != bob.ID {
		t.Errorf("Expected winner %s, got %v", bob.ID, resolution.WinnerCandidateID)
	}

	// Results now include the resolution
	rreq := testutil.MakeRequest("GET", "/api/elections/"+e.ID+"/results", nil, nil)
	rreq.SetPathValue("id", e.ID)
	rw := httptest.NewRecorder()
	handler.GetResults(rw, rreq)
	testutil.AssertStatus(t, rw, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, rw, &resp)
	if resp.Resolution == nil {
		t.Fatal("Expected resolution in results response")
	}
	if resp.Resolution.Kind != models.ResolutionManual {
		t.Errorf("Expected MANUAL resolution, got %s", resp.Resolution.Kind)
	}

	// A second resolution is rejected
	req2 := testutil.MakeRequest("POST", "/api/elections/"+e.ID+"/resolve-tie",
		models.ResolveTieRequest{Kind: models.ResolutionRecall},
		map[string]string{"X-Admin-Key": adminKey})
	req2.SetPathValue("id", e.ID)
	w2 := httptest.NewRecorder()
	handler.ResolveTie(w2, req2)
	testutil.AssertStatus(t, w2, http.StatusConflict)
}

func TestGetAuditLog(t *testing.T) {
	handler, s := newElectionHandler(t)
	cfg := testutil.GetTestConfig()

	e := testutil.CreateTestElection(t, s, models.TypeFPTP, "DRAFT")
	adminKey := auth.GenerateAdminKey(e.ID, cfg.AdminKeySalt)

	entry := models.AuditEntry{
		ElectionID:     e.ID,
		ElectionName:   e.Name,
		PreviousStatus: models.StatusDraft,
		NewStatus:      models.StatusActive,
		Timestamp:      time.Now().UTC(),
	}
	if err := s.SaveAuditEntry(entry); err != nil {
		t.Fatal(err)
	}

	req := testutil.MakeRequest("GET", "/api/elections/"+e.ID+"/audit", nil,
		map[string]string{"X-Admin-Key": adminKey})
	req.SetPathValue("id", e.ID)
	w := httptest.NewRecorder()

	handler.GetAuditLog(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var entries []models.AuditEntry
	testutil.AssertJSON(t, w, &entries)
	if len(entries) != 1 {
		t.Errorf("Expected 1 audit entry, got %d", len(entries))
	}
}
