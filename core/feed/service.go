// ABOUTME: Feed service handles RSS/Atom/JSON feed parsing
// ABOUTME: Fetches a single feed and flattens it into the domain feed shape

package feed

import (
	"bytes"
	"context"
	"strings"

	"article-parser-api/core/domain"
	coreerrors "article-parser-api/core/errors"
	"article-parser-api/core/fetch"
	"article-parser-api/core/interfaces"
	htmlutil "article-parser-api/pkg/utils/html"

	"github.com/mmcdole/gofeed"
)

// Options tunes how feed entries are flattened
type Options struct {
	// DescriptionMaxLen truncates entry descriptions; 0 keeps them whole
	DescriptionMaxLen int
}

// FeedService implements interfaces.FeedReader
type FeedService struct {
	deps interfaces.Dependencies
	opts Options
}

// NewFeedService creates a new feed service instance
func NewFeedService(deps interfaces.Dependencies, opts Options) *FeedService {
	return &FeedService{
		deps: deps,
		opts: opts,
	}
}

// ReadFeed fetches and parses the feed at feedURL
func (s *FeedService) ReadFeed(ctx context.Context, feedURL string) (*domain.Feed, error) {
	target, err := fetch.ValidateURL(feedURL)
	if err != nil {
		return nil, err
	}

	body, err := fetch.Document(ctx, s.deps.HTTPClient, target)
	if err != nil {
		return nil, err
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, coreerrors.WithStack(&coreerrors.ParseError{Kind: "feed", Message: err.Error()})
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Parsed feed", map[string]interface{}{
			"url":     target.String(),
			"type":    parsed.FeedType,
			"entries": len(parsed.Items),
		})
	}

	return s.convertFeed(parsed), nil
}

func (s *FeedService) convertFeed(parsed *gofeed.Feed) *domain.Feed {
	feed := &domain.Feed{
		Link:        firstNonEmpty(parsed.Link, parsed.FeedLink),
		Title:       strings.TrimSpace(parsed.Title),
		Description: htmlutil.StripHTML(parsed.Description),
		Generator:   parsed.Generator,
		Language:    parsed.Language,
		Published:   publishedTime(parsed.UpdatedParsed, parsed.PublishedParsed, parsed.Updated, parsed.Published),
		Entries:     make([]domain.FeedEntry, 0, len(parsed.Items)),
	}

	for _, item := range parsed.Items {
		if item == nil {
			continue
		}
		feed.Entries = append(feed.Entries, s.convertItem(item))
	}

	return feed
}

func (s *FeedService) convertItem(item *gofeed.Item) domain.FeedEntry {
	description := htmlutil.StripHTML(firstNonEmpty(item.Description, item.Content))

	entry := domain.FeedEntry{
		ID:          firstNonEmpty(item.GUID, item.Link),
		Title:       strings.TrimSpace(item.Title),
		Link:        item.Link,
		Description: htmlutil.Truncate(description, s.opts.DescriptionMaxLen),
		Published:   publishedTime(item.PublishedParsed, item.UpdatedParsed, item.Published, item.Updated),
		Categories:  item.Categories,
	}

	if item.Author != nil {
		entry.Author = item.Author.Name
	} else if len(item.Authors) > 0 && item.Authors[0] != nil {
		entry.Author = item.Authors[0].Name
	}

	return entry
}
