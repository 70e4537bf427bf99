// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the plain data records shared by every layer.

# Domain Types

  - Question: text and publication time
  - Choice: an answer belonging to a question, with its vote count
  - QuestionWithChoices: a question together with its choices

Domain types carry both db tags (for sqlx scanning) and json tags (for the
JSON API). They have no behavior of their own; visibility rules live in the
polls package.

# Request Types

Form payloads posted by the detail page:

  - VoteRequest: choice
  - AddChoiceRequest: choice_text, choice_votes (validated with struct tags)

# Response Types

Types for JSON responses:

  - QuestionSummary: id, question_text, pub_date, recent
  - ListQuestionsResponse: questions
  - ErrorResponse: error, message
*/
package models
