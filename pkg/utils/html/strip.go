// ABOUTME: HTML utilities for turning markup into short plain text
// ABOUTME: Used for feed entry descriptions, which often carry HTML fragments

package html

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const ellipsis = "..."

// StripHTML removes tags, scripts and styles from s, decodes entities and
// collapses whitespace to single spaces
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return collapseSpaces(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseSpaces(s)
	}
	doc.Find("script, style, noscript").Remove()

	return collapseSpaces(doc.Text())
}

// Truncate shortens s to at most maxLen runes, ending with "..." when cut.
// A maxLen of zero or less disables truncation.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	if maxLen <= len(ellipsis) {
		return string([]rune(s)[:maxLen])
	}

	cut := []rune(s)[:maxLen-len(ellipsis)]
	return strings.TrimRight(string(cut), " ") + ellipsis
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
