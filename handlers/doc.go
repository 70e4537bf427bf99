// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers for the polls site.

QuestionHandler holds the database handle and a clock:

	h := handlers.NewQuestionHandler(db, cfg)

The clock (h.Now) decides which questions are published, so tests can pin it.

# Pages

	GET  /questions/{id}          → Detail (404 unless published)
	GET  /questions/{id}/results  → Results
	POST /questions/{id}/vote     → Vote (form field "choice")
	POST /questions/{id}/choices  → AddChoice ("choice_text", "choice_votes")

Form handlers answer 302 to /{id}/results/ on success. Invalid input
re-renders the detail page with the message beside the form, status 200.

# JSON

	GET /api/questions       → APIListQuestions
	GET /api/questions/{id}  → APIGetQuestion

A path id that is not an integer is treated as an unknown question.
*/
package handlers
