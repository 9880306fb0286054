// ABOUTME: Request DTO for the extraction endpoint
// ABOUTME: Reads the url and isRssFeed query parameters from any request path

package requests

import (
	"net/http"

	"article-parser-api/core/domain"
)

// Query parameter names understood by the extraction endpoint
const (
	QueryURL       = "url"
	QueryIsRSSFeed = "isRssFeed"
)

// ExtractRequest is the decoded form of an extraction request
type ExtractRequest struct {
	// URL is the target page or feed; empty when the parameter is absent
	URL string

	// Mode is FeedMode when isRssFeed is set to a truthy or empty value
	Mode domain.ExtractionMode
}

// ParseExtractRequest decodes the query string of r. Missing values are not
// errors here; an empty URL is rejected by the capability that receives it.
func ParseExtractRequest(r *http.Request) ExtractRequest {
	query := r.URL.Query()

	_, present := query[QueryIsRSSFeed]

	return ExtractRequest{
		URL:  query.Get(QueryURL),
		Mode: domain.ParseFeedFlag(query.Get(QueryIsRSSFeed), present),
	}
}
