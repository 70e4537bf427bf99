// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"time"

	"github.com/danielhkuo/polls/models"
)

type IndexItem struct {
	ID        int64
	Text      string
	Published time.Time
	Recent    bool
}

type IndexPage struct {
	Now       time.Time
	Questions []IndexItem
}

// DetailPage is the voting form. VoteError and AddError are shown next to
// their respective forms when set.
type DetailPage struct {
	Question  models.Question
	Choices   []models.Choice
	VoteError string
	AddError  string
}

type ResultsPage struct {
	Question models.Question
	Choices  []models.Choice
}
