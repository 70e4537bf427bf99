// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/handlers"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/views"
)

func NewRouter(db *sqlx.DB, cfg cliparse.Config) http.Handler {
	return NewRouterWithHandler(handlers.NewQuestionHandler(db, cfg))
}

// NewRouterWithHandler builds the route table around an existing handler,
// e.g. one with a fixed clock.
func NewRouterWithHandler(h *handlers.QuestionHandler) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(h.Index))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(h.Detail))
	mux.HandleFunc("GET /questions/{id}/results", middleware.WithLogging(h.Results))
	mux.HandleFunc("POST /questions/{id}/vote", middleware.WithLogging(h.Vote))
	mux.HandleFunc("POST /questions/{id}/choices", middleware.WithLogging(h.AddChoice))

	// Short paths, as linked from redirects
	mux.HandleFunc("GET /{id}/{$}", middleware.WithLogging(h.Detail))
	mux.HandleFunc("GET /{id}/results/{$}", middleware.WithLogging(h.Results))
	mux.HandleFunc("POST /{id}/vote/{$}", middleware.WithLogging(h.Vote))
	mux.HandleFunc("POST /{id}/add_choice/{$}", middleware.WithLogging(h.AddChoice))

	// JSON API
	list := middleware.CORS(middleware.WithLogging(h.APIListQuestions))
	get := middleware.CORS(middleware.WithLogging(h.APIGetQuestion))
	mux.Handle("GET /api/questions", list)
	mux.Handle("OPTIONS /api/questions", list)
	mux.Handle("GET /api/questions/{id}", get)
	mux.Handle("OPTIONS /api/questions/{id}", get)

	// Everything else
	mux.Handle("GET /", templ.Handler(views.NotFound(), templ.WithStatus(http.StatusNotFound)))

	return middleware.WithRequestID(mux)
}
