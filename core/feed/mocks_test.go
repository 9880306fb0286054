package feed

import (
	"context"
	"errors"
	"io"
	"strings"

	"article-parser-api/core/interfaces"
)

// mockHTTPClient implements interfaces.HTTPClient for testing
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
	calls   int
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.calls++
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, errors.New("not implemented")
}

// mockResponse implements interfaces.Response for testing
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int      { return m.statusCode }
func (m *mockResponse) Body() io.ReadCloser  { return io.NopCloser(strings.NewReader(m.body)) }
func (m *mockResponse) Header(string) string { return "" }

func feedClient(status int, body string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: status, body: body}, nil
		},
	}
}

// mockLogger implements interfaces.Logger for testing
type mockLogger struct {
	debugCalls int
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.debugCalls++ }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
