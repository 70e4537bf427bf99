// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"github.com/danielhkuo/polls/store"
)

// ErrNotFound is returned for unknown questions and for questions that are
// not yet visible.
var ErrNotFound = store.ErrNotFound

// Form fields a ValidationError can be attached to.
const (
	FieldVote = "vote"
	FieldAdd  = "add"
)

// Messages shown next to the offending form.
const (
	MsgSelectChoice = "Please select a choice"
	MsgChoiceText   = "Please enter a choice text"
	MsgChoiceVotes  = "Please enter a valid vote count"
)

// ValidationError is a user input problem. It is rendered inline with the
// detail page rather than failing the request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
