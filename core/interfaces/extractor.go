// ABOUTME: Capability interfaces for article extraction and feed reading
// ABOUTME: The HTTP layer depends only on these, never on the parsing libraries

package interfaces

import (
	"context"

	"article-parser-api/core/domain"
)

// ArticleExtractor derives readable article content from a web page
type ArticleExtractor interface {
	// ExtractArticle fetches the page at url and returns its article content.
	ExtractArticle(ctx context.Context, url string) (*domain.Article, error)
}

// FeedReader parses an RSS, Atom or JSON feed
type FeedReader interface {
	// ReadFeed fetches the feed at url and returns its entries.
	ReadFeed(ctx context.Context, url string) (*domain.Feed, error)
}
