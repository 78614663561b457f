// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles various date formats found in feeds and article meta tags

package timex

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Fallback layouts for strings dateparse rejects.
var layouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// Parse attempts to parse a date string, returning the zero time when no
// format matches. It never returns an error.
func Parse(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	if t, err := dateparse.ParseAny(raw); err == nil {
		return t
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}

	return time.Time{}
}

// ToMillis parses a date string to epoch milliseconds. Unparseable or absent
// input yields 0, as do pre-epoch dates, so callers can treat 0 as "no
// usable date" without seeing negative values.
func ToMillis(raw string) int64 {
	t := Parse(raw)
	if t.IsZero() {
		return 0
	}
	ms := t.UnixMilli()
	if ms < 0 {
		return 0
	}
	return ms
}
