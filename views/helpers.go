// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"context"
	"io"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
)

func itoa(value int64) string {
	return strconv.FormatInt(value, 10)
}

func questionURL(id int64) string {
	return "/questions/" + itoa(id)
}

func voteURL(id int64) string {
	return questionURL(id) + "/vote"
}

func addChoiceURL(id int64) string {
	return questionURL(id) + "/choices"
}

func resultsURL(id int64) string {
	return questionURL(id) + "/results"
}

// published renders a publication time relative to now, e.g. "3 days ago".
func published(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

func votes(n int) string {
	return english.Plural(n, "vote", "")
}

// writer accumulates the first write error so templates can be written as
// a flat sequence of calls.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func layout(title string, body func(w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>`)
		w.text(title)
		w.raw(`</title>
  </head>
  <body>
    <main>
`)
		body(w)
		w.raw(`
    </main>
  </body>
</html>
`)
		return w.err
	})
}
