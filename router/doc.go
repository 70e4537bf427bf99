// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes for the polls site.

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Pages, each also reachable through its short form:

	GET  /                          /
	GET  /questions/{id}            /{id}/
	GET  /questions/{id}/results    /{id}/results/
	POST /questions/{id}/vote       /{id}/vote/
	POST /questions/{id}/choices    /{id}/add_choice/

JSON (CORS enabled):

	GET /api/questions
	GET /api/questions/{id}

Any other GET renders the not found page. Every response carries an
X-Request-ID header.
*/
package router
