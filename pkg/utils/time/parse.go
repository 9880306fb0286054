// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles the formats found in feeds and article meta tags

package time

import (
	"strings"
	"time"
)

// Common time formats found in RSS/Atom feeds and <meta> tags
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	time.RFC850,
	time.ANSIC,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006 15:04:05 MST",
	"02 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// ParseFlexibleTime attempts to parse a time string using various formats.
// Returns the zero time when no format matches.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// FormatTimestamp renders t as RFC 3339 in UTC, or "" for the zero time
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// Normalize parses a loosely formatted timestamp and renders it as RFC 3339.
// Values that cannot be parsed are returned trimmed but otherwise unchanged.
func Normalize(timeStr string) string {
	if parsed := ParseFlexibleTime(timeStr); !parsed.IsZero() {
		return FormatTimestamp(parsed)
	}
	return strings.TrimSpace(timeStr)
}
