// ABOUTME: Application bootstrap wiring configuration, logging, HTTP client and capabilities
// ABOUTME: Shared by the serve and extract commands

package main

import (
	"io"
	"net/http"

	"article-parser-api/api/handlers"
	"article-parser-api/api/middleware"
	"article-parser-api/core/extract"
	"article-parser-api/core/feed"
	"article-parser-api/core/interfaces"
	"article-parser-api/core/reader"
	stdhttp "article-parser-api/infrastructure/http/standard"
	"article-parser-api/infrastructure/logger/structured"
	"article-parser-api/pkg/config"

	"github.com/pkg/errors"
)

// app holds the assembled components of the process
type app struct {
	cfg       *config.Config
	logger    interfaces.Logger
	extractor handlers.Extractor
	closer    io.Closer
}

// appFactory builds the application; replaced in tests
type appFactory func() (*app, error)

// newApp loads configuration from the environment and assembles the app
func newApp() (*app, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	logger, err := structured.New(cfg.Log)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	a := buildApp(cfg, logger, nil)
	a.closer = logger
	return a, nil
}

// buildApp wires the capabilities. A nil transport means http.DefaultTransport.
func buildApp(cfg *config.Config, logger interfaces.Logger, transport http.RoundTripper) *app {
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Fetch, &middleware.LoggingRoundTripper{
		Transport: transport,
		Logger:    logger,
	})

	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	articles := reader.NewService(deps, reader.Options{Markdown: cfg.Reader.Markdown})
	feeds := feed.NewFeedService(deps, feed.Options{DescriptionMaxLen: cfg.Feed.DescriptionMaxLen})

	return &app{
		cfg:       cfg,
		logger:    logger,
		extractor: extract.NewService(articles, feeds),
	}
}

// Close releases resources held by the app
func (a *app) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
