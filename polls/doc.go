// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package polls holds the visibility rules and the user-facing flows of the
polls application.

# Visibility

A question is published once its publication time is not in the future,
and recent while it was published within the last 24 hours:

	polls.IsPublished(q, now)
	polls.IsRecent(q, now)

The current time is always passed in.

# Flows

Every flow takes a store.Queryer explicitly:

	Latest(ctx, db, now)                  → up to 5 published questions, newest first
	Detail(ctx, db, id, now)              → question + choices, ErrNotFound if hidden
	Results(ctx, db, id)                  → question + choices with counts
	Vote(ctx, db, id, rawChoice)          → Outcome
	AddChoice(ctx, db, id, text, votes)   → Outcome

Form flows return an Outcome instead of writing a response. Its Decision is
either Redirect (to ResultsPath) or Render, in which case Detail and Err
describe the page to show again:

	out, err := polls.Vote(ctx, db, id, r.PostFormValue("choice"))
	switch {
	case errors.Is(err, polls.ErrNotFound):
		// 404
	case err != nil:
		// 500
	case out.Decision == polls.Redirect:
		http.Redirect(w, r, out.Location, http.StatusFound)
	default:
		// render out.Detail with out.Err.Message
	}

# Votes

A vote is a single UPDATE ... SET votes = votes + 1 evaluated by the
database, so concurrent votes on one choice are never lost. Voting and
results do not check the publication time; only Detail and Latest do.
*/
package polls
