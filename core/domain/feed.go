// ABOUTME: Feed domain model represents a parsed RSS/Atom/JSON feed
// ABOUTME: Flattened to the link/title/entries shape returned to clients

package domain

// Feed represents a parsed syndication feed
type Feed struct {
	// Link is the website URL associated with the feed
	Link string `json:"link"`

	// Title is the human-readable title of the feed
	Title string `json:"title"`

	// Description provides a brief description of the feed's content
	Description string `json:"description"`

	// Generator names the software that produced the feed
	Generator string `json:"generator"`

	// Language is the declared feed language (e.g., "en-US")
	Language string `json:"language"`

	// Published is the feed update time in RFC 3339, or the raw value when unparseable
	Published string `json:"published"`

	// Entries contains the feed items in document order
	Entries []FeedEntry `json:"entries"`
}

// FeedEntry represents a single item of a feed
type FeedEntry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Description string   `json:"description"`
	Published   string   `json:"published"`
	Author      string   `json:"author,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}
