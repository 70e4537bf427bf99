// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/polls"
)

// APIListQuestions handles GET /api/questions
func (h *QuestionHandler) APIListQuestions(w http.ResponseWriter, r *http.Request) {
	now := h.Now()

	questions, err := polls.Latest(r.Context(), h.db, now)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.ListQuestionsResponse{Questions: make([]models.QuestionSummary, 0, len(questions))}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, models.QuestionSummary{
			ID:      q.ID,
			Text:    q.Text,
			PubDate: q.PubDate,
			Recent:  polls.IsRecent(q, now),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// APIGetQuestion handles GET /api/questions/{id}
func (h *QuestionHandler) APIGetQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	detail, err := polls.Detail(r.Context(), h.db, id, h.Now())
	if errors.Is(err, polls.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to load question", "error", err, "question_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, detail)
}
