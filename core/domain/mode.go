// ABOUTME: Extraction mode selects which capability serves a request
// ABOUTME: Parses the isRssFeed query flag into an explicit article/feed choice

package domain

import "strings"

// ExtractionMode is the extraction strategy chosen for a single request
type ExtractionMode int

const (
	// ArticleMode extracts a readable article from an HTML page
	ArticleMode ExtractionMode = iota

	// FeedMode reads an RSS/Atom/JSON feed
	FeedMode
)

// String returns the mode name used in logs and CLI output
func (m ExtractionMode) String() string {
	switch m {
	case ArticleMode:
		return "article"
	case FeedMode:
		return "feed"
	default:
		return "unknown"
	}
}

var falsyFlagValues = map[string]struct{}{
	"0":     {},
	"f":     {},
	"false": {},
	"n":     {},
	"no":    {},
	"off":   {},
}

// ParseFeedFlag decides the mode from the isRssFeed query parameter.
// A bare flag (present, empty value) selects FeedMode. Explicit false
// spellings select ArticleMode; every other present value selects FeedMode.
func ParseFeedFlag(value string, present bool) ExtractionMode {
	if !present {
		return ArticleMode
	}

	normalized := strings.ToLower(strings.TrimSpace(value))
	if _, falsy := falsyFlagValues[normalized]; falsy {
		return ArticleMode
	}

	return FeedMode
}
