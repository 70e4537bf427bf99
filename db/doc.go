// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema and loads seed data.

# Connecting

Open picks the driver from the configured database type and pings it:

	conn, err := db.Open(ctx, cfg)

PostgreSQL goes through lib/pq; sqlite goes through modernc.org/sqlite
(pure Go, no cgo). sqlite connections get foreign keys enabled, a busy
timeout and a lexically sortable timestamp format, and the pool is capped
at a single connection.

# Schema Creation

CreateSchema initializes all required tables for the connected dialect:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: question_text, pub_date
  - choice: question_id, choice_text, votes (never negative)

# Relationships

	question 1──* choice

Deleting a question deletes its choices (ON DELETE CASCADE).

# Seeding

LoadQuestions reads a CSV of questions and their choices:

	question_text,pub_date,choice,choice
	What's new?,-1,Not much,The sky
	Coming soon,2030-01-01T00:00:00Z,Yes,No

pub_date is either RFC 3339 or a day offset from now.
*/
package db
