package handlers

import (
	"context"
	"sync"

	"article-parser-api/core/domain"
)

// mockExtractor implements Extractor for testing
type mockExtractor struct {
	mu          sync.Mutex
	extractFunc func(ctx context.Context, mode domain.ExtractionMode, url string) (interface{}, error)
	calls       []extractCall
}

type extractCall struct {
	mode domain.ExtractionMode
	url  string
}

func (m *mockExtractor) Extract(ctx context.Context, mode domain.ExtractionMode, url string) (interface{}, error) {
	m.mu.Lock()
	m.calls = append(m.calls, extractCall{mode: mode, url: url})
	m.mu.Unlock()

	if m.extractFunc != nil {
		return m.extractFunc(ctx, mode, url)
	}
	return nil, nil
}

// mockArticleExtractor implements interfaces.ArticleExtractor for testing
type mockArticleExtractor struct {
	extractFunc func(ctx context.Context, url string) (*domain.Article, error)
	calls       int
}

func (m *mockArticleExtractor) ExtractArticle(ctx context.Context, url string) (*domain.Article, error) {
	m.calls++
	return m.extractFunc(ctx, url)
}

// mockFeedReader implements interfaces.FeedReader for testing
type mockFeedReader struct {
	readFunc func(ctx context.Context, url string) (*domain.Feed, error)
	calls    int
}

func (m *mockFeedReader) ReadFeed(ctx context.Context, url string) (*domain.Feed, error) {
	m.calls++
	return m.readFunc(ctx, url)
}

type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// mockLogger implements interfaces.Logger for testing
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) add(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (m *mockLogger) byLevel(level string) []logEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []logEntry
	for _, e := range m.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.add("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.add("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.add("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.add("error", msg, fields) }
