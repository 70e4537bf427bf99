// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/store"
)

// LatestLimit is the number of questions shown on the index page.
const LatestLimit = 5

// Decision tells the caller what to do with an Outcome.
type Decision int

const (
	// Render the detail page again, with Err shown next to its form.
	Render Decision = iota
	// Redirect to Location.
	Redirect
)

// Outcome is the result of a form submission.
type Outcome struct {
	Decision Decision
	Location string
	Detail   models.QuestionWithChoices
	Err      *ValidationError
}

// ResultsPath is where successful submissions send the client.
func ResultsPath(questionID int64) string {
	return "/" + strconv.FormatInt(questionID, 10) + "/results/"
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Latest returns the most recently published questions, newest first.
func Latest(ctx context.Context, q store.Queryer, now time.Time) ([]models.Question, error) {
	questions, err := store.LatestPublished(ctx, q, now, LatestLimit)
	if err != nil {
		return nil, fmt.Errorf("list latest questions: %w", err)
	}
	return questions, nil
}

// Detail returns a published question and its choices. Unknown and
// unpublished questions both yield ErrNotFound.
func Detail(ctx context.Context, q store.Queryer, questionID int64, now time.Time) (models.QuestionWithChoices, error) {
	question, err := store.PublishedQuestionByID(ctx, q, questionID, now)
	if err != nil {
		return models.QuestionWithChoices{}, fmt.Errorf("question %d: %w", questionID, err)
	}
	return withChoices(ctx, q, question)
}

// Results returns a question and its vote counts. Publication time is not
// checked.
func Results(ctx context.Context, q store.Queryer, questionID int64) (models.QuestionWithChoices, error) {
	question, err := store.QuestionByID(ctx, q, questionID)
	if err != nil {
		return models.QuestionWithChoices{}, fmt.Errorf("question %d: %w", questionID, err)
	}
	return withChoices(ctx, q, question)
}

// Vote records one vote for the choice identified by rawChoice. A missing,
// malformed or foreign choice leaves every count untouched and asks the user
// to select a choice.
//
// Like Results, voting does not check the publication time.
func Vote(ctx context.Context, q store.Queryer, questionID int64, rawChoice string) (Outcome, error) {
	question, err := store.QuestionByID(ctx, q, questionID)
	if err != nil {
		return Outcome{}, fmt.Errorf("question %d: %w", questionID, err)
	}

	choiceID, err := strconv.ParseInt(strings.TrimSpace(rawChoice), 10, 64)
	if err != nil {
		return rerender(ctx, q, question, FieldVote, MsgSelectChoice)
	}

	err = store.IncrementVotes(ctx, q, question.ID, choiceID)
	if errors.Is(err, store.ErrNotFound) {
		return rerender(ctx, q, question, FieldVote, MsgSelectChoice)
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("vote for choice %d: %w", choiceID, err)
	}

	slog.Info("vote recorded", "question_id", question.ID, "choice_id", choiceID)

	return Outcome{Decision: Redirect, Location: ResultsPath(question.ID)}, nil
}

// AddChoice creates a new choice on the question. rawVotes is the optional
// starting count; empty means zero.
func AddChoice(ctx context.Context, q store.Queryer, questionID int64, text, rawVotes string) (Outcome, error) {
	question, err := store.QuestionByID(ctx, q, questionID)
	if err != nil {
		return Outcome{}, fmt.Errorf("question %d: %w", questionID, err)
	}

	req := models.AddChoiceRequest{Text: strings.TrimSpace(text)}
	if raw := strings.TrimSpace(rawVotes); raw != "" {
		votes, err := strconv.Atoi(raw)
		if err != nil {
			return rerender(ctx, q, question, FieldAdd, MsgChoiceVotes)
		}
		req.Votes = votes
	}

	if err := formValidator().Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return Outcome{}, fmt.Errorf("validate choice: %w", err)
		}
		msg := MsgChoiceVotes
		for _, fe := range fieldErrs {
			if fe.Field() == "Text" {
				msg = MsgChoiceText
				break
			}
		}
		return rerender(ctx, q, question, FieldAdd, msg)
	}

	choice, err := store.CreateChoice(ctx, q, question.ID, req.Text, req.Votes)
	if err != nil {
		return Outcome{}, fmt.Errorf("create choice: %w", err)
	}

	slog.Info("choice added", "question_id", question.ID, "choice_id", choice.ID)

	return Outcome{Decision: Redirect, Location: ResultsPath(question.ID)}, nil
}

func rerender(ctx context.Context, q store.Queryer, question models.Question, field, msg string) (Outcome, error) {
	detail, err := withChoices(ctx, q, question)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Decision: Render,
		Detail:   detail,
		Err:      &ValidationError{Field: field, Message: msg},
	}, nil
}

func withChoices(ctx context.Context, q store.Queryer, question models.Question) (models.QuestionWithChoices, error) {
	choices, err := store.ChoicesByQuestion(ctx, q, question.ID)
	if err != nil {
		return models.QuestionWithChoices{}, fmt.Errorf("choices of question %d: %w", question.ID, err)
	}
	return models.QuestionWithChoices{Question: question, Choices: choices}, nil
}
