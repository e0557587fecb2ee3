// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/quickly-survey/testutil"
)

// TestConcurrentSubmissions verifies that simultaneous submissions from
// different users each produce exactly one record with a distinct id
func TestConcurrentSubmissions(t *testing.T) {
	_, handler, create := setupResponseHandler(t)

	numUsers := 10
	tokens := make([]string, numUsers)
	for i := 0; i < numUsers; i++ {
		tokens[i] = testutil.MintToken(t, int64(i+1))
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numUsers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := fmt.Sprintf(`{"data":{"frameworkUsing":"Yes","framework":["React"],"seq":%d}}`, idx)
			req := testutil.MakeRequest("POST", "/survey-responses", body, testutil.BearerHeader(tokens[idx]))
			w := httptest.NewRecorder()

			create.ServeHTTP(w, req)

			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numUsers {
		t.Errorf("Expected %d successful submissions, got %d", numUsers, successCount.Load())
	}

	listed := listResponses(t, handler)
	if len(listed) != numUsers {
		t.Fatalf("Expected %d stored responses, got %d", numUsers, len(listed))
	}

	seenIDs := make(map[int64]bool)
	seenUsers := make(map[int64]bool)
	for _, r := range listed {
		if seenIDs[r.ID] {
			t.Errorf("Duplicate id %d", r.ID)
		}
		seenIDs[r.ID] = true
		seenUsers[r.UserID] = true
	}
	if len(seenUsers) != numUsers {
		t.Errorf("Expected %d distinct users, got %d", numUsers, len(seenUsers))
	}
}

// TestConcurrentSubmissionsSameUser verifies that one user submitting many
// times gets one record per submission, not an upsert
func TestConcurrentSubmissionsSameUser(t *testing.T) {
	_, handler, create := setupResponseHandler(t)
	token := testutil.MintToken(t, 42)

	numSubmissions := 8
	var wg sync.WaitGroup
	for i := 0; i < numSubmissions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/survey-responses", `{"data":{"about":"again"}}`, testutil.BearerHeader(token))
			w := httptest.NewRecorder()
			create.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
			}
		}()
	}
	wg.Wait()

	listed := listResponses(t, handler)
	if len(listed) != numSubmissions {
		t.Errorf("Expected %d stored responses, got %d", numSubmissions, len(listed))
	}
	for _, r := range listed {
		if r.UserID != 42 {
			t.Errorf("Expected userId 42, got %d", r.UserID)
		}
	}
}

// TestConcurrentReadsDuringWrites checks that listing while submissions land
// never errors and always returns ids in ascending order
func TestConcurrentReadsDuringWrites(t *testing.T) {
	_, handler, create := setupResponseHandler(t)
	token := testutil.MintToken(t, 7)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			req := testutil.MakeRequest("POST", "/survey-responses", `{"data":{}}`, testutil.BearerHeader(token))
			create.ServeHTTP(httptest.NewRecorder(), req)
		}()
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			handler.List(w, testutil.MakeRequest("GET", "/survey-responses", nil, nil))
			if w.Code != http.StatusOK {
				t.Errorf("Expected 200 from listing, got %d", w.Code)
			}
		}()
	}
	wg.Wait()

	listed := listResponses(t, handler)
	for i := 1; i < len(listed); i++ {
		if listed[i-1].ID >= listed[i].ID {
			t.Errorf("Expected ascending ids, got %d then %d", listed[i-1].ID, listed[i].ID)
		}
	}
}
