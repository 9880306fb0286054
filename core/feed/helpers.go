// ABOUTME: Helpers for flattening gofeed timestamps and optional fields
// ABOUTME: Keeps the feed service focused on mapping

package feed

import (
	"time"

	timeutil "article-parser-api/pkg/utils/time"
)

// publishedTime prefers the parsed timestamps in order and falls back to
// normalizing the raw strings
func publishedTime(primary, secondary *time.Time, rawPrimary, rawSecondary string) string {
	for _, t := range []*time.Time{primary, secondary} {
		if t != nil && !t.IsZero() {
			return timeutil.FormatTimestamp(*t)
		}
	}
	if raw := firstNonEmpty(rawPrimary, rawSecondary); raw != "" {
		return timeutil.Normalize(raw)
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
