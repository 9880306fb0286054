// ABOUTME: Domain model for an extracted article
// ABOUTME: Mirrors the JSON shape clients of the article endpoint expect

package domain

import (
	"math"
	"strings"
)

// WordsPerMinute is the reading speed used for time-to-read estimates
const WordsPerMinute = 300

// Article represents readable content extracted from a web page
type Article struct {
	URL         string   `json:"url"`
	Links       []string `json:"links"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Favicon     string   `json:"favicon"`
	Author      string   `json:"author"`
	Content     string   `json:"content"`            // HTML content
	Markdown    string   `json:"markdown,omitempty"` // Markdown content, when enabled
	TextContent string   `json:"textContent"`        // Plain text content
	Source      string   `json:"source"`
	Published   string   `json:"published"`
	Language    string   `json:"language"`
	TTR         int      `json:"ttr"` // Estimated seconds to read
	Type        string   `json:"type"`
}

// TimeToRead estimates the reading time of text in whole seconds
func TimeToRead(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	minutes := float64(words) / WordsPerMinute
	return int(math.Ceil(minutes * 60))
}
