// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polls server.

Polls is a small server-rendered voting site: visitors see the latest
published questions, vote on a choice, add their own choices and read the
results.

# Starting the Server

With no configuration the server uses a local sqlite file:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

Flags override environment variables, which override the .env file.

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): sqlite path (default: polls.db) or PostgreSQL URL
  - DB_MAX_OPEN_CONNS: PostgreSQL pool size (default: 10)
  - SEED_FILE (-seed): CSV of questions to load at startup
  - LOG_FORMAT (-log-format): text or json
  - ENV_FILE (-env): dotenv file (default: .env)

# Seeding

Questions are created administratively. A seed file has one question per row:

	question_text,pub_date,choice,choice,...
	What's up?,-1,Not much,The sky

pub_date is RFC 3339 or a number of days relative to startup.

# Architecture

  - handlers: HTTP handlers for pages and the JSON API
  - polls: publication rules and the vote / add choice flows
  - store: SQL repository functions
  - views: HTML components
  - router: Route definitions using Go 1.22+ routing
  - middleware: request IDs, logging, CORS, JSON helpers
  - models: Data and response types
  - db: Connection, schema and seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
