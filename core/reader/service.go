// ABOUTME: Service layer implementation for article extraction
// ABOUTME: Fetches a page once and derives readable content with go-readability and metadata with goquery

package reader

import (
	"bytes"
	"context"
	"strings"

	"article-parser-api/core/domain"
	coreerrors "article-parser-api/core/errors"
	"article-parser-api/core/fetch"
	"article-parser-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// Options tunes article extraction
type Options struct {
	// Markdown adds a markdown rendering of the content to each article
	Markdown bool
}

// Service implements interfaces.ArticleExtractor
type Service struct {
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
	opts       Options
}

// NewService creates a new article extraction service
func NewService(deps interfaces.Dependencies, opts Options) *Service {
	return &Service{
		httpClient: deps.HTTPClient,
		logger:     deps.Logger,
		opts:       opts,
	}
}

// ExtractArticle fetches the page at rawURL and returns its readable content
func (s *Service) ExtractArticle(ctx context.Context, rawURL string) (*domain.Article, error) {
	target, err := fetch.ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	body, err := fetch.Document(ctx, s.httpClient, target)
	if err != nil {
		return nil, err
	}

	parsed, err := readability.FromReader(bytes.NewReader(body), target)
	if err != nil {
		return nil, coreerrors.WithStack(&coreerrors.ParseError{Kind: "article", Message: err.Error()})
	}
	if strings.TrimSpace(parsed.TextContent) == "" {
		return nil, coreerrors.WithStack(&coreerrors.ParseError{Kind: "article", Message: "no readable content found"})
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, coreerrors.WithStack(&coreerrors.ParseError{Kind: "article", Message: err.Error()})
	}
	meta := readMetadata(doc)

	meta.title = firstNonEmpty(strings.TrimSpace(parsed.Title), meta.title)
	meta.author = firstNonEmpty(strings.TrimSpace(parsed.Byline), meta.author)
	meta.source = firstNonEmpty(strings.TrimSpace(parsed.SiteName), meta.source, target.Hostname())

	article := &domain.Article{
		URL:         target.String(),
		Links:       uniqueLinks(target.String(), meta.canonical, meta.ogURL),
		Title:       meta.title,
		Description: firstNonEmpty(meta.description, strings.TrimSpace(parsed.Excerpt)),
		Image:       firstNonEmpty(parsed.Image, meta.image),
		Favicon:     parsed.Favicon,
		Author:      meta.author,
		Content:     parsed.Content,
		TextContent: strings.TrimSpace(parsed.TextContent),
		Source:      meta.source,
		Published:   meta.published,
		Language:    meta.language,
		Type:        meta.kind,
	}
	article.TTR = domain.TimeToRead(article.TextContent)

	if s.opts.Markdown && article.Content != "" {
		markdown, err := renderMarkdown(meta, article.Content)
		if err != nil {
			s.logger.Debug("Failed to convert HTML to markdown", map[string]interface{}{
				"url":   article.URL,
				"error": err.Error(),
			})
		} else {
			article.Markdown = markdown
		}
	}

	return article, nil
}
