// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/danielhkuo/polls/models"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func TestIndex_Empty(t *testing.T) {
	body := render(t, Index(IndexPage{Now: time.Now()}))

	if !strings.Contains(body, "No polls are available.") {
		t.Errorf("Expected empty message, got %s", body)
	}
}

func TestIndex_ListsQuestions(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	body := render(t, Index(IndexPage{
		Now: now,
		Questions: []IndexItem{
			{ID: 3, Text: "Fresh question", Published: now.Add(-2 * time.Hour), Recent: true},
			{ID: 1, Text: "Old question", Published: now.AddDate(0, 0, -3)},
		},
	}))

	for _, want := range []string{
		`href="/questions/3"`,
		`href="/questions/1"`,
		"Fresh question",
		"2 hours ago",
		"3 days ago",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected %q in body: %s", want, body)
		}
	}
	if strings.Count(body, `class="badge"`) != 1 {
		t.Errorf("Expected exactly one new badge: %s", body)
	}
	if strings.Contains(body, NoPollsMessage) {
		t.Error("Did not expect empty message")
	}
}

func TestDetail_EscapesAndShowsErrors(t *testing.T) {
	page := DetailPage{
		Question:  models.Question{ID: 9, Text: "<script>alert(1)</script>"},
		Choices:   []models.Choice{{ID: 4, QuestionID: 9, Text: "Tom & Jerry"}},
		VoteError: "Please select a choice",
	}
	body := render(t, Detail(page))

	if strings.Contains(body, "<script>alert(1)</script>") {
		t.Error("Expected question text to be escaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Errorf("Expected escaped script tag: %s", body)
	}
	if !strings.Contains(body, "Tom &amp; Jerry") {
		t.Errorf("Expected escaped choice text: %s", body)
	}
	if !strings.Contains(body, "Please select a choice") {
		t.Errorf("Expected vote error: %s", body)
	}
	if strings.Contains(body, "Please enter a choice text") {
		t.Error("Did not expect add error")
	}
	for _, want := range []string{`action="/questions/9/vote"`, `action="/questions/9/choices"`, `value="4"`, `name="choice_text"`, `name="choice_votes"`} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected %q in body", want)
		}
	}
}

func TestResults(t *testing.T) {
	page := ResultsPage{
		Question: models.Question{ID: 2, Text: "Best colour?"},
		Choices: []models.Choice{
			{ID: 1, Text: "Red", Votes: 1},
			{ID: 2, Text: "Blue", Votes: 3},
		},
	}
	body := render(t, Results(page))

	for _, want := range []string{"Best colour?", "Red -- 1 vote<", "Blue -- 3 votes", `href="/questions/2"`} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected %q in body: %s", want, body)
		}
	}
}

func TestNotFound(t *testing.T) {
	body := render(t, NotFound())
	if !strings.Contains(body, "Not found") {
		t.Errorf("Expected not found page, got %s", body)
	}
}
