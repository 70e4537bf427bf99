// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"time"

	"github.com/danielhkuo/polls/models"
)

// RecentWindow is how long a question counts as recently published.
const RecentWindow = 24 * time.Hour

// IsPublished reports whether q is visible at now.
func IsPublished(q models.Question, now time.Time) bool {
	return !q.PubDate.After(now)
}

// IsRecent reports whether q was published within the last RecentWindow.
// Questions dated in the future are never recent.
func IsRecent(q models.Question, now time.Time) bool {
	if !IsPublished(q, now) {
		return false
	}
	return q.PubDate.After(now.Add(-RecentWindow))
}
