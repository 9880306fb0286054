// Package core contains the business logic of the article parser.
// It is framework-agnostic and can be used independently of the HTTP layer.
//
// The core package is organized into several sub-packages:
//
// - domain: pure models (Article, Feed, ExtractionMode)
// - fetch: URL validation and document download shared by both capabilities
// - reader: article extraction with go-readability and goquery
// - feed: RSS/Atom/JSON feed reading with gofeed
// - extract: dispatch of a request to exactly one capability
// - errors: error types and stack trace helpers
// - interfaces: contracts for external dependencies (HTTP, logger) and capabilities
//
// # Design Principles
//
// - All external dependencies are injected via interfaces
// - Each capability fetches its target exactly once
// - Results are returned whole or not at all
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	service := extract.NewService(
//	    reader.NewService(deps, reader.Options{}),
//	    feed.NewFeedService(deps, feed.Options{DescriptionMaxLen: 210}),
//	)
//
//	result, err := service.Extract(ctx, domain.FeedMode, "https://example.com/feed.rss")
package core
