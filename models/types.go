// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Domain types

type Question struct {
	ID      int64     `db:"id" json:"id"`
	Text    string    `db:"question_text" json:"question_text"`
	PubDate time.Time `db:"pub_date" json:"pub_date"`
}

type Choice struct {
	ID         int64  `db:"id" json:"id"`
	QuestionID int64  `db:"question_id" json:"question_id"`
	Text       string `db:"choice_text" json:"choice_text"`
	Votes      int    `db:"votes" json:"votes"`
}

type QuestionWithChoices struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

// Request types

// Form fields posted by the detail page.
type VoteRequest struct {
	Choice string
}

type AddChoiceRequest struct {
	Text  string `validate:"required"`
	Votes int    `validate:"gte=0"`
}

// Response types

type QuestionSummary struct {
	ID      int64     `json:"id"`
	Text    string    `json:"question_text"`
	PubDate time.Time `json:"pub_date"`
	Recent  bool      `json:"recent"`
}

type ListQuestionsResponse struct {
	Questions []QuestionSummary `json:"questions"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
