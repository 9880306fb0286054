// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Fetches target documents with bounded bodies and optional exponential backoff

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	coreerrors "article-parser-api/core/errors"
	"article-parser-api/core/interfaces"
	"article-parser-api/pkg/config"

	"github.com/cenkalti/backoff/v4"
)

const (
	acceptHeader     = "text/html,application/xhtml+xml,application/rss+xml,application/atom+xml,application/feed+json,application/xml;q=0.9,*/*;q=0.8"
	initialRetryWait = 100 * time.Millisecond
)

// StandardHTTPClient implements the HTTPClient interface using net/http
type StandardHTTPClient struct {
	client       *http.Client
	userAgent    string
	maxAttempts  int
	maxBodyBytes int64
}

// NewStandardHTTPClient creates a client from the fetch configuration.
// A nil transport means http.DefaultTransport.
func NewStandardHTTPClient(cfg config.FetchConfig, transport http.RoundTripper) *StandardHTTPClient {
	if transport == nil {
		transport = http.DefaultTransport
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		userAgent:    cfg.UserAgent,
		maxAttempts:  maxAttempts,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
}

// Get performs an HTTP GET request. Transport errors and 5xx answers are
// retried until the configured number of attempts is used up.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", acceptHeader)

	operation := func() (*http.Response, error) {
		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}

		if resp.StatusCode >= 500 {
			resp.Body.Close()
			return nil, &coreerrors.ExternalAPIError{
				StatusCode: resp.StatusCode,
				Message:    http.StatusText(resp.StatusCode),
				API:        req.URL.Host,
			}
		}

		return resp, nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = initialRetryWait
	retries := backoff.WithMaxRetries(policy, uint64(c.maxAttempts-1))

	resp, err := backoff.RetryWithData(operation, backoff.WithContext(retries, ctx))
	if err != nil {
		return nil, err
	}

	body := resp.Body
	if c.maxBodyBytes > 0 {
		body = &limitedBody{
			Reader:   io.LimitReader(resp.Body, c.maxBodyBytes+1),
			Closer:   resp.Body,
			limit:    c.maxBodyBytes,
			exceeded: &coreerrors.ExternalAPIError{
				StatusCode: resp.StatusCode,
				Message:    fmt.Sprintf("response body exceeds %d bytes", c.maxBodyBytes),
				API:        req.URL.Host,
			},
		}
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       body,
		headers:    resp.Header,
	}, nil
}

// limitedBody fails reads once more than limit bytes arrive, so an
// oversized document is never handed on partially
type limitedBody struct {
	io.Reader
	io.Closer
	limit    int64
	read     int64
	exceeded error
}

func (b *limitedBody) Read(p []byte) (int, error) {
	if b.read > b.limit {
		return 0, b.exceeded
	}
	n, err := b.Reader.Read(p)
	b.read += int64(n)
	if b.read > b.limit {
		return n - int(b.read-b.limit), b.exceeded
	}
	return n, err
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
