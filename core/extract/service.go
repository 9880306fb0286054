// ABOUTME: Extraction dispatcher selecting article extraction or feed reading per request
// ABOUTME: Invokes exactly one capability and returns its result untouched

package extract

import (
	"context"
	"fmt"

	"article-parser-api/core/domain"
	coreerrors "article-parser-api/core/errors"
	"article-parser-api/core/interfaces"
)

// Service routes a request to the capability named by its mode
type Service struct {
	articles interfaces.ArticleExtractor
	feeds    interfaces.FeedReader
}

// NewService creates a dispatcher over the two capabilities
func NewService(articles interfaces.ArticleExtractor, feeds interfaces.FeedReader) *Service {
	return &Service{
		articles: articles,
		feeds:    feeds,
	}
}

// Extract runs the capability for mode against url. The result is a
// *domain.Article or a *domain.Feed; on error it is nil.
func (s *Service) Extract(ctx context.Context, mode domain.ExtractionMode, url string) (interface{}, error) {
	switch mode {
	case domain.FeedMode:
		if s.feeds == nil {
			return nil, coreerrors.WithStack(fmt.Errorf("feed reader not configured"))
		}
		feed, err := s.feeds.ReadFeed(ctx, url)
		if err != nil {
			return nil, err
		}
		return feed, nil
	case domain.ArticleMode:
		if s.articles == nil {
			return nil, coreerrors.WithStack(fmt.Errorf("article extractor not configured"))
		}
		article, err := s.articles.ExtractArticle(ctx, url)
		if err != nil {
			return nil, err
		}
		return article, nil
	default:
		return nil, coreerrors.WithStack(fmt.Errorf("unknown extraction mode %d", mode))
	}
}
