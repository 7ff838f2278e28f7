// Copyright (c) 2025 Consensus Authors.
// Source-available; see LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/consensusvote/consensus/models"
	"github.com/consensusvote/consensus/store"
	"github.com/consensusvote/consensus/testutil"
)

func newVoterHandler(t *testing.T) (*VoterHandler, *store.Store) {
	t.Helper()

	s := testutil.SetupTestStore(t)
	return NewVoterHandler(s, testutil.GetTestConfig()), s
}

func TestRegisterVoter(t *testing.T) {
	handler, _ := newVoterHandler(t)

	tests := []struct {
		name           string
		body           models.RegisterVoterRequest
		expectedStatus int
	}{
		{
			name:           "valid registration",
			body:           models.RegisterVoterRequest{Name: "Carol", Email: "carol@example.com"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate email",
			body:           models.RegisterVoterRequest{Name: "Carol Again", Email: "carol@example.com"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "missing name",
			body:           models.RegisterVoterRequest{Email: "dave@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed email",
			body:           models.RegisterVoterRequest{Name: "Dave", Email: "not-an-email"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/voters", tt.body, nil)
			w := httptest.NewRecorder()

			handler.RegisterVoter(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var voter models.Voter
				testutil.AssertJSON(t, w, &voter)
				if voter.RegistrationStatus != models.RegistrationPending {
					t.Errorf("Expected PENDING registration, got %s", voter.RegistrationStatus)
				}
				if voter.ID == "" {
					t.Error("Expected non-empty voter ID")
				}
			}
		})
	}
}

func TestGetVoter(t *testing.T) {
	handler, s := newVoterHandler(t)

	voter := testutil.CreateTestVoter(t, s, "lookup-voter")

	req := testutil.MakeRequest("GET", "/api/voters/"+voter.ID, nil, nil)
	req.SetPathValue("id", voter.ID)
	w := httptest.NewRecorder()

	handler.GetVoter(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var got models.Voter
	testutil.AssertJSON(t, w, &got)
	if got.ID != voter.ID || got.Email != voter.Email {
		t.Errorf("Returned voter does not match: %+v", got)
	}

	t.Run("unknown voter", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/voters/no-such-voter", nil, nil)
		req.SetPathValue("id", "no-such-voter")
		w := httptest.NewRecorder()

		handler.GetVoter(w, req)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestUpdateVoterStatus(t *testing.T) {
	handler, s := newVoterHandler(t)
	cfg := testutil.GetTestConfig()
	registryKey := RegistryAdminKey(cfg)

	voter := models.Voter{
		ID:                 "pending-approval-id",
		Name:               "Pending Person",
		Email:              "pending.person@example.com",
		RegistrationStatus: models.RegistrationPending,
	}
	if err := s.SaveVoter(voter); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name           string
		voterID        string
		adminKey       string
		status         string
		expectedStatus int
	}{
		{
			name:           "missing registry key",
			voterID:        voter.ID,
			status:         models.RegistrationApproved,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong registry key",
			voterID:        voter.ID,
			adminKey:       "bogus-key",
			status:         models.RegistrationApproved,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid status value",
			voterID:        voter.ID,
			adminKey:       registryKey,
			status:         "BANNED",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown voter",
			voterID:        "no-such-voter",
			adminKey:       registryKey,
			status:         models.RegistrationApproved,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "approve",
			voterID:        voter.ID,
			adminKey:       registryKey,
			status:         models.RegistrationApproved,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "suspend",
			voterID:        voter.ID,
			adminKey:       registryKey,
			status:         models.RegistrationSuspended,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.adminKey != "" {
				headers["X-Admin-Key"] = tt.adminKey
			}
			req := testutil.MakeRequest("PUT", "/api/voters/"+tt.voterID+"/status",
				models.UpdateVoterStatusRequest{Status: tt.status}, headers)
			req.SetPathValue("id", tt.voterID)
			w := httptest.NewRecorder()

			handler.UpdateVoterStatus(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var updated models.Voter
				testutil.AssertJSON(t, w, &updated)
				if updated.RegistrationStatus != tt.status {
					t.Errorf("Expected status %s, got %s", tt.status, updated.RegistrationStatus)
				}

				stored, err := s.Voter(tt.voterID)
				if err != nil {
					t.Fatal(err)
				}
				if stored.RegistrationStatus != tt.status {
					t.Errorf("Store not updated: expected %s, got %s", tt.status, stored.RegistrationStatus)
				}
			}
		})
	}
}

func TestListVoters(t *testing.T) {
	handler, s := newVoterHandler(t)
	registryKey := RegistryAdminKey(testutil.GetTestConfig())

	testutil.CreateTestVoter(t, s, "voter-one")
	testutil.CreateTestVoter(t, s, "voter-two")

	t.Run("requires registry key", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/voters", nil, nil)
		w := httptest.NewRecorder()

		handler.ListVoters(w, req)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("lists all voters", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/voters", nil,
			map[string]string{"X-Admin-Key": registryKey})
		w := httptest.NewRecorder()

		handler.ListVoters(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var voters []models.Voter
		testutil.AssertJSON(t, w, &voters)
		if len(voters) != 2 {
			t.Errorf("Expected 2 voters, got %d", len(voters))
		}
	})
}
