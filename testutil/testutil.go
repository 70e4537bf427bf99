// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
)

// SetupTestDB creates a fresh sqlite database with the full schema.
// The file lives in the test's temp dir and is removed with it.
func SetupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	cfg := GetTestConfig(t)
	conn, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig(t *testing.T) cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseType:   cliparse.DatabaseSQLite,
		DatabaseURL:    filepath.Join(t.TempDir(), "polls_test.db"),
		DBMaxOpenConns: 1,
		LogFormat:      "text",
	}
}

// CreateTestQuestion creates a question published the given number of days
// from now (negative for the past).
func CreateTestQuestion(t *testing.T, conn *sqlx.DB, text string, days int) models.Question {
	t.Helper()
	return CreateTestQuestionAt(t, conn, text, time.Now().AddDate(0, 0, days))
}

// CreateTestQuestionAt creates a question with an exact publication time.
func CreateTestQuestionAt(t *testing.T, conn *sqlx.DB, text string, pubDate time.Time) models.Question {
	t.Helper()

	question, err := store.CreateQuestion(context.Background(), conn, text, pubDate)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	return question
}

// AddTestChoice adds a choice to a question and returns it
func AddTestChoice(t *testing.T, conn *sqlx.DB, questionID int64, text string, votes int) models.Choice {
	t.Helper()

	choice, err := store.CreateChoice(context.Background(), conn, questionID, text, votes)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}
	return choice
}

// GetVotes reads the current vote count of a choice
func GetVotes(t *testing.T, conn *sqlx.DB, choiceID int64) int {
	t.Helper()

	choice, err := store.ChoiceByID(context.Background(), conn, choiceID)
	if err != nil {
		t.Fatalf("Failed to read choice %d: %v", choiceID, err)
	}
	return choice.Votes
}

// CountChoices returns the number of choices stored for a question
func CountChoices(t *testing.T, conn *sqlx.DB, questionID int64) int {
	t.Helper()

	var n int
	err := conn.Get(&n, conn.Rebind(`SELECT COUNT(*) FROM choice WHERE question_id = ?`), questionID)
	if err != nil {
		t.Fatalf("Failed to count choices: %v", err)
	}
	return n
}

// MakeFormRequest creates a form-encoded HTTP test request
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertContains checks that the response body contains the given text
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body to contain %q. Body: %s", text, w.Body.String())
	}
}
