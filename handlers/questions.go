// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
	"github.com/danielhkuo/polls/polls"
	"github.com/danielhkuo/polls/views"
)

type QuestionHandler struct {
	db  *sqlx.DB
	cfg cliparse.Config

	// Now is the clock used for publication checks.
	Now func() time.Time
}

func NewQuestionHandler(db *sqlx.DB, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{db: db, cfg: cfg, Now: time.Now}
}

// Index handles GET /
func (h *QuestionHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.Now()

	questions, err := polls.Latest(r.Context(), h.db, now)
	if err != nil {
		h.serverError(w, r, "failed to list questions", err)
		return
	}

	page := views.IndexPage{Now: now, Questions: make([]views.IndexItem, 0, len(questions))}
	for _, q := range questions {
		page.Questions = append(page.Questions, views.IndexItem{
			ID:        q.ID,
			Text:      q.Text,
			Published: q.PubDate,
			Recent:    polls.IsRecent(q, now),
		})
	}

	h.render(w, r, http.StatusOK, views.Index(page))
}

// Detail handles GET /questions/{id}
func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.questionID(w, r)
	if !ok {
		return
	}

	detail, err := polls.Detail(r.Context(), h.db, id, h.Now())
	if err != nil {
		h.lookupError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, views.Detail(views.DetailPage{
		Question: detail.Question,
		Choices:  detail.Choices,
	}))
}

// Results handles GET /questions/{id}/results
func (h *QuestionHandler) Results(w http.ResponseWriter, r *http.Request) {
	id, ok := h.questionID(w, r)
	if !ok {
		return
	}

	detail, err := polls.Results(r.Context(), h.db, id)
	if err != nil {
		h.lookupError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, views.Results(views.ResultsPage{
		Question: detail.Question,
		Choices:  detail.Choices,
	}))
}

// Vote handles POST /questions/{id}/vote
func (h *QuestionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, ok := h.questionID(w, r)
	if !ok {
		return
	}

	req := models.VoteRequest{Choice: r.PostFormValue("choice")}

	outcome, err := polls.Vote(r.Context(), h.db, id, req.Choice)
	if err != nil {
		h.lookupError(w, r, err)
		return
	}
	h.finish(w, r, outcome)
}

// AddChoice handles POST /questions/{id}/choices
func (h *QuestionHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.questionID(w, r)
	if !ok {
		return
	}

	outcome, err := polls.AddChoice(r.Context(), h.db, id,
		r.PostFormValue("choice_text"), r.PostFormValue("choice_votes"))
	if err != nil {
		h.lookupError(w, r, err)
		return
	}
	h.finish(w, r, outcome)
}

// finish either redirects or re-renders the detail page with the error
// placed next to the form it belongs to.
func (h *QuestionHandler) finish(w http.ResponseWriter, r *http.Request, outcome polls.Outcome) {
	if outcome.Decision == polls.Redirect {
		http.Redirect(w, r, outcome.Location, http.StatusFound)
		return
	}

	page := views.DetailPage{
		Question: outcome.Detail.Question,
		Choices:  outcome.Detail.Choices,
	}
	if outcome.Err != nil {
		switch outcome.Err.Field {
		case polls.FieldVote:
			page.VoteError = outcome.Err.Message
		case polls.FieldAdd:
			page.AddError = outcome.Err.Message
		}
	}
	h.render(w, r, http.StatusOK, views.Detail(page))
}

// questionID parses the {id} path value. Anything that is not an integer
// cannot name a question, so it is answered with 404.
func (h *QuestionHandler) questionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.render(w, r, http.StatusNotFound, views.NotFound())
		return 0, false
	}
	return id, true
}

func (h *QuestionHandler) lookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, polls.ErrNotFound) {
		h.render(w, r, http.StatusNotFound, views.NotFound())
		return
	}
	h.serverError(w, r, "failed to load question", err)
}

func (h *QuestionHandler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "error", err, "path", r.URL.Path, "request_id", middleware.RequestID(r.Context()))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *QuestionHandler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}
