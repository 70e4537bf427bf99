// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"github.com/a-h/templ"
)

// NoPollsMessage is shown on the index page when nothing is published.
const NoPollsMessage = "No polls are available."

func Index(page IndexPage) templ.Component {
	return layout("Polls", func(w *writer) {
		w.raw("      <h1>Latest polls</h1>\n")
		if len(page.Questions) == 0 {
			w.raw("      <p>")
			w.text(NoPollsMessage)
			w.raw("</p>\n")
			return
		}
		w.raw("      <ul>\n")
		for _, q := range page.Questions {
			w.raw(`        <li><a href="` + questionURL(q.ID) + `">`)
			w.text(q.Text)
			w.raw(`</a> <small>published `)
			w.text(published(q.Published, page.Now))
			w.raw(`</small>`)
			if q.Recent {
				w.raw(` <span class="badge">new</span>`)
			}
			w.raw("</li>\n")
		}
		w.raw("      </ul>\n")
	})
}

func Detail(page DetailPage) templ.Component {
	q := page.Question
	return layout(q.Text, func(w *writer) {
		w.raw(`      <form action="` + voteURL(q.ID) + `" method="post">
        <fieldset>
          <legend><h1>`)
		w.text(q.Text)
		w.raw("</h1></legend>\n")
		if page.VoteError != "" {
			w.raw(`          <p class="error"><strong>`)
			w.text(page.VoteError)
			w.raw("</strong></p>\n")
		}
		for _, c := range page.Choices {
			id := "choice" + itoa(c.ID)
			w.raw(`          <input type="radio" name="choice" id="` + id + `" value="` + itoa(c.ID) + `"/>
          <label for="` + id + `">`)
			w.text(c.Text)
			w.raw("</label><br/>\n")
		}
		w.raw(`        </fieldset>
        <input type="submit" value="Vote"/>
      </form>
      <form action="` + addChoiceURL(q.ID) + `" method="post">
        <fieldset>
          <legend>Add a choice</legend>
`)
		if page.AddError != "" {
			w.raw(`          <p class="error"><strong>`)
			w.text(page.AddError)
			w.raw("</strong></p>\n")
		}
		w.raw(`          <label for="choice_text">Text</label>
          <input type="text" name="choice_text" id="choice_text"/>
          <label for="choice_votes">Votes</label>
          <input type="number" name="choice_votes" id="choice_votes" min="0" value="0"/>
        </fieldset>
        <input type="submit" value="Add"/>
      </form>
      <a href="` + resultsURL(q.ID) + `">Results</a>
`)
	})
}

func Results(page ResultsPage) templ.Component {
	q := page.Question
	return layout(q.Text, func(w *writer) {
		w.raw("      <h1>")
		w.text(q.Text)
		w.raw("</h1>\n      <ul>\n")
		for _, c := range page.Choices {
			w.raw("        <li>")
			w.text(c.Text)
			w.raw(" -- ")
			w.text(votes(c.Votes))
			w.raw("</li>\n")
		}
		w.raw(`      </ul>
      <a href="` + questionURL(q.ID) + `">Vote again?</a>
      <a href="/">All polls</a>
`)
	})
}

func NotFound() templ.Component {
	return layout("Not found", func(w *writer) {
		w.raw(`      <h1>Not found</h1>
      <p>No poll with that id is available.</p>
      <a href="/">All polls</a>
`)
	})
}
