// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickpoll/db"
)

// TestDBURL is an in-memory SQLite database, private to each pool
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// CreateTestPoll inserts a poll with the given options and returns their IDs
func CreateTestPoll(t *testing.T, conn *sql.DB, question string, options ...string) (pollID int64, optionIDs []int64) {
	t.Helper()

	err := conn.QueryRow(`INSERT INTO polls (question) VALUES ($1) RETURNING id`, question).Scan(&pollID)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	for _, desc := range options {
		optionIDs = append(optionIDs, AddTestOption(t, conn, pollID, desc))
	}

	return pollID, optionIDs
}

// AddTestOption adds an option to a poll and returns the option ID
func AddTestOption(t *testing.T, conn *sql.DB, pollID int64, description string) int64 {
	t.Helper()

	var optionID int64
	err := conn.QueryRow(`
		INSERT INTO options (poll_id, description)
		VALUES ($1, $2)
		RETURNING id
	`, pollID, description).Scan(&optionID)
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}

	return optionID
}

// CastTestVotes inserts n votes for an option
func CastTestVotes(t *testing.T, conn *sql.DB, pollID, optionID int64, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		_, err := conn.Exec(`INSERT INTO votes (poll_id, option_id) VALUES ($1, $2)`, pollID, optionID)
		if err != nil {
			t.Fatalf("Failed to create test vote: %v", err)
		}
	}
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
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
