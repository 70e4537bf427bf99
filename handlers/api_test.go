// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/testutil"
)

func TestAPIListQuestions(t *testing.T) {
	h, conn := newTestHandler(t)
	testutil.CreateTestQuestion(t, conn, "Past question.", -30)
	testutil.CreateTestQuestion(t, conn, "Recent question.", -5)
	testutil.CreateTestQuestion(t, conn, "Future question.", 30)
	testutil.CreateTestQuestionAt(t, conn, "Just now.", time.Now().Add(-time.Minute))

	w := httptest.NewRecorder()
	h.APIListQuestions(w, httptest.NewRequest("GET", "/api/questions", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ListQuestionsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	want := []string{"Just now.", "Recent question.", "Past question."}
	if len(resp.Questions) != len(want) {
		t.Fatalf("Expected %d questions, got %d", len(want), len(resp.Questions))
	}
	for i, text := range want {
		if resp.Questions[i].Text != text {
			t.Errorf("Question %d: expected %q, got %q", i, text, resp.Questions[i].Text)
		}
	}
	if !resp.Questions[0].Recent {
		t.Error("Expected newest question to be recent")
	}
	if resp.Questions[1].Recent {
		t.Error("Expected 5 day old question not to be recent")
	}
}

func TestAPIGetQuestion(t *testing.T) {
	h, conn := newTestHandler(t)
	q := testutil.CreateTestQuestion(t, conn, "API question", -1)
	testutil.AddTestChoice(t, conn, q.ID, "A", 2)
	testutil.AddTestChoice(t, conn, q.ID, "B", 0)

	w := httptest.NewRecorder()
	h.APIGetQuestion(w, withID(httptest.NewRequest("GET", "/", nil), q.ID))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.QuestionWithChoices
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Question.ID != q.ID {
		t.Errorf("Expected question %d, got %d", q.ID, resp.Question.ID)
	}
	if len(resp.Choices) != 2 || resp.Choices[0].Votes != 2 {
		t.Errorf("Unexpected choices: %+v", resp.Choices)
	}
}

func TestAPIGetQuestion_NotFound(t *testing.T) {
	h, conn := newTestHandler(t)
	future := testutil.CreateTestQuestion(t, conn, "Hidden", 3)

	for _, id := range []string{"abc", "12345", "0"} {
		req := httptest.NewRequest("GET", "/api/questions/"+id, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()
		h.APIGetQuestion(w, req)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	}

	w := httptest.NewRecorder()
	h.APIGetQuestion(w, withID(httptest.NewRequest("GET", "/", nil), future.ID))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error: %v", err)
	}
	if resp.Error != "Not Found" {
		t.Errorf("Expected error 'Not Found', got %q", resp.Error)
	}
}
