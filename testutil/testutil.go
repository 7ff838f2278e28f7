// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/consensusvote/consensus/cliparse"
	"github.com/consensusvote/consensus/models"
	"github.com/consensusvote/consensus/store"
)

// SetupTestStore creates a fresh in-memory database with the full schema.
// Each call gets its own database, so tests never share state.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := s.Init(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return s
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              4416,
		DatabaseURL:       ":memory:",
		DatabaseType:      "sqlite",
		AdminKeySalt:      "test-admin-salt",
		SchedulerInterval: time.Minute,
	}
}

// CreateTestElection inserts an election and returns it.
// status should be models.StatusDraft, StatusActive or StatusClosed.
// The voting window spans yesterday to tomorrow so an active election
// accepts votes now.
func CreateTestElection(t *testing.T, s *store.Store, electionType, status string) models.Election {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Second)
	e := models.Election{
		ID:        uuid.NewString(),
		Name:      "Test Election",
		Type:      electionType,
		Status:    status,
		StartDate: now.Add(-24 * time.Hour),
		EndDate:   now.Add(24 * time.Hour),
		CreatedAt: now,
	}
	if err := s.SaveElection(e); err != nil {
		t.Fatalf("Failed to create test election: %v", err)
	}
	return e
}

// AddTestCandidate adds a candidate to an election and returns it
func AddTestCandidate(t *testing.T, s *store.Store, electionID, name string) models.Candidate {
	t.Helper()

	c := models.Candidate{
		ID:         uuid.NewString(),
		ElectionID: electionID,
		Name:       name,
	}
	if err := s.SaveCandidate(c); err != nil {
		t.Fatalf("Failed to create test candidate: %v", err)
	}
	return c
}

// CreateTestVoter registers an approved voter and returns it
func CreateTestVoter(t *testing.T, s *store.Store, name string) models.Voter {
	t.Helper()

	v := models.Voter{
		ID:                 uuid.NewString(),
		Name:               name,
		Email:              name + "@example.com",
		RegistrationStatus: models.RegistrationApproved,
		RegisteredAt:       time.Now().UTC().Truncate(time.Second),
	}
	if err := s.SaveVoter(v); err != nil {
		t.Fatalf("Failed to create test voter: %v", err)
	}
	return v
}

// CastTestBallot stores an anonymous ballot directly, bypassing the
// casting preconditions. Useful for seeding tabulation tests.
func CastTestBallot(t *testing.T, s *store.Store, electionID string, preferences []string) models.Ballot {
	t.Helper()

	b := models.Ballot{
		ID:          uuid.NewString(),
		ElectionID:  electionID,
		Preferences: preferences,
		CastAt:      time.Now().UTC().Truncate(time.Second),
	}
	if err := s.SaveBallot(b); err != nil {
		t.Fatalf("Failed to create test ballot: %v", err)
	}
	return b
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
