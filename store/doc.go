// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides repository functions for questions and choices.

Every function takes the storage handle as its first argument after the
context, so the same code runs on a connection or inside a transaction:

	question, err := store.QuestionByID(ctx, db, id)

	tx, _ := db.BeginTxx(ctx, nil)
	store.CreateChoice(ctx, tx, question.ID, "Yes", 0)

Queries are written with ? placeholders and rebound for the driver in use.

# Errors

Driver errors are normalized by CastErr:

  - sql.ErrNoRows, foreign key violations → ErrNotFound
  - check constraint violations → ErrConstraint

UPDATE and DELETE statements that touch no row also return ErrNotFound.
*/
package store
