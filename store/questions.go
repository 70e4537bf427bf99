// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"time"

	"github.com/danielhkuo/polls/models"
)

func CreateQuestion(ctx context.Context, q Queryer, text string, pubDate time.Time) (models.Question, error) {
	question := models.Question{Text: text, PubDate: pubDate.UTC()}
	err := q.GetContext(ctx, &question.ID, q.Rebind(`
		INSERT INTO question (question_text, pub_date)
		VALUES (?, ?)
		RETURNING id
	`), question.Text, question.PubDate)
	return question, CastErr(err)
}

func QuestionByID(ctx context.Context, q Queryer, id int64) (models.Question, error) {
	var question models.Question
	err := q.GetContext(ctx, &question, q.Rebind(`
		SELECT id, question_text, pub_date FROM question WHERE id = ?
	`), id)
	return question, CastErr(err)
}

// PublishedQuestionByID is QuestionByID restricted to questions whose
// publication time is not after now.
func PublishedQuestionByID(ctx context.Context, q Queryer, id int64, now time.Time) (models.Question, error) {
	var question models.Question
	err := q.GetContext(ctx, &question, q.Rebind(`
		SELECT id, question_text, pub_date FROM question
		WHERE id = ? AND pub_date <= ?
	`), id, now.UTC())
	return question, CastErr(err)
}

// LatestPublished returns up to limit questions published at or before now,
// most recent first.
func LatestPublished(ctx context.Context, q Queryer, now time.Time, limit int) ([]models.Question, error) {
	questions := make([]models.Question, 0, limit)
	err := q.SelectContext(ctx, &questions, q.Rebind(`
		SELECT id, question_text, pub_date FROM question
		WHERE pub_date <= ?
		ORDER BY pub_date DESC, id DESC
		LIMIT ?
	`), now.UTC(), limit)
	return questions, CastErr(err)
}

// DeleteQuestion removes a question; its choices go with it.
func DeleteQuestion(ctx context.Context, q Queryer, id int64) error {
	return affectedOne(q.ExecContext(ctx, q.Rebind(`
		DELETE FROM question WHERE id = ?
	`), id))
}
