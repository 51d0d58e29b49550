package utils

import (
	"strings"
	"time"
)

// DateLayout is the human-readable calendar-date rendering used in API
// responses, e.g. "Mon Jan 02 2006".
const DateLayout = "Mon Jan 02 2006"

// dateLayouts are tried in order by ParseDate. Layouts without a zone are
// interpreted as UTC.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	DateLayout,
	"2006-01",
	"2006",
}

// ParseDate parses a client-supplied date. It reports false for empty or
// unrecognized input so callers can substitute their own default.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseDateDefault returns the parsed date, or def when s is empty or invalid.
func ParseDateDefault(s string, def time.Time) time.Time {
	if t, ok := ParseDate(s); ok {
		return t
	}
	return def
}

// FormatDate renders t as a calendar date without time of day.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
