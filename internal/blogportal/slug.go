package blogportal

import (
	"fmt"
	"strings"
)

// wordsPerMinute is the assumed average reading speed.
const wordsPerMinute = 200

// Slugify converts a title into a lowercase URL-safe slug: characters outside
// [a-z0-9 -] are dropped, whitespace runs become single hyphens, hyphen runs
// collapse, leading and trailing hyphens are trimmed. Idempotent. An empty or
// all-punctuation title yields "" — callers must reject that before use.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastWasHyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastWasHyphen = false
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '-':
			if !lastWasHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastWasHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// EstimateReadTime returns a human-readable reading time estimate for the
// content, e.g. "5 min read". Words are whitespace-separated runs; the count
// is divided by wordsPerMinute and rounded up, with a minimum of one minute.
func EstimateReadTime(content string) string {
	words := len(strings.Fields(content))

	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return fmt.Sprintf("%d min read", minutes)
}
