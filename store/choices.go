// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/polls/models"
)

func CreateChoice(ctx context.Context, q Queryer, questionID int64, text string, votes int) (models.Choice, error) {
	choice := models.Choice{QuestionID: questionID, Text: text, Votes: votes}
	err := q.GetContext(ctx, &choice.ID, q.Rebind(`
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES (?, ?, ?)
		RETURNING id
	`), questionID, text, votes)
	return choice, CastErr(err)
}

func ChoiceByID(ctx context.Context, q Queryer, id int64) (models.Choice, error) {
	var choice models.Choice
	err := q.GetContext(ctx, &choice, q.Rebind(`
		SELECT id, question_id, choice_text, votes FROM choice WHERE id = ?
	`), id)
	return choice, CastErr(err)
}

func ChoicesByQuestion(ctx context.Context, q Queryer, questionID int64) ([]models.Choice, error) {
	choices := make([]models.Choice, 0)
	err := q.SelectContext(ctx, &choices, q.Rebind(`
		SELECT id, question_id, choice_text, votes FROM choice
		WHERE question_id = ?
		ORDER BY id
	`), questionID)
	return choices, CastErr(err)
}

// IncrementVotes adds one vote to the choice, provided it belongs to the
// question. The addition is evaluated by the database so concurrent votes
// are never lost. Returns ErrNotFound when no such choice exists.
func IncrementVotes(ctx context.Context, q Queryer, questionID, choiceID int64) error {
	return affectedOne(q.ExecContext(ctx, q.Rebind(`
		UPDATE choice SET votes = votes + 1
		WHERE id = ? AND question_id = ?
	`), choiceID, questionID))
}
