// ABOUTME: Shared fetch contract for the article and feed capabilities
// ABOUTME: Validates target URLs and downloads documents through the injected HTTP client

package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	coreerrors "article-parser-api/core/errors"
	"article-parser-api/core/interfaces"
)

// ValidateURL checks that rawURL is an absolute http(s) URL with a host
func ValidateURL(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, invalidURL("invalid url")
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, invalidURL(fmt.Sprintf("invalid url: %v", err))
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, invalidURL(fmt.Sprintf("invalid url: unsupported scheme %q", parsed.Scheme))
	}

	if parsed.Host == "" {
		return nil, invalidURL("invalid url: missing host")
	}

	return parsed, nil
}

func invalidURL(message string) error {
	return coreerrors.WithStack(&coreerrors.ValidationError{
		Field:   "url",
		Message: message,
	})
}

// Document downloads the document at target and returns its body.
// Any non-2xx answer is reported as an ExternalAPIError.
func Document(ctx context.Context, client interfaces.HTTPClient, target *url.URL) ([]byte, error) {
	if client == nil {
		return nil, coreerrors.WithStack(fmt.Errorf("HTTP client not configured"))
	}

	resp, err := client.Get(ctx, target.String())
	if err != nil {
		return nil, coreerrors.WrapError(err, "fetch "+target.String())
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, coreerrors.WithStack(&coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
			API:        target.Host,
		})
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "read "+target.String())
	}

	if len(body) == 0 {
		return nil, coreerrors.WithStack(&coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "empty response body",
			API:        target.Host,
		})
	}

	return body, nil
}
