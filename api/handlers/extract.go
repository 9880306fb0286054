// ABOUTME: Extraction handler serving the article/feed JSON endpoint on every path
// ABOUTME: Decodes the query, dispatches to one capability and writes the body verbatim

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"article-parser-api/api/dto/requests"
	"article-parser-api/api/middleware"
	"article-parser-api/core/domain"
	coreerrors "article-parser-api/core/errors"
	"article-parser-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// Extractor runs the capability selected by mode for url
type Extractor interface {
	Extract(ctx context.Context, mode domain.ExtractionMode, url string) (interface{}, error)
}

// ExtractOptions tunes the extraction handler
type ExtractOptions struct {
	// ErrorDetail appends the error message to the ERROR body
	ErrorDetail bool
}

// ExtractHandler handles extraction requests
type ExtractHandler struct {
	extractor Extractor
	logger    interfaces.Logger
	opts      ExtractOptions
}

// NewExtractHandler creates a new extraction handler
func NewExtractHandler(extractor Extractor, logger interfaces.Logger, opts ExtractOptions) *ExtractHandler {
	return &ExtractHandler{
		extractor: extractor,
		logger:    logger,
		opts:      opts,
	}
}

// ServeHTTP answers 200 with the JSON result or 500 with the ERROR body.
// The method and path are not inspected.
func (h *ExtractHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req := requests.ParseExtractRequest(r)
	requestID := middleware.RequestIDFromContext(r.Context())

	// Extraction outlives a disconnected client so that its outcome is logged.
	ctx := context.WithoutCancel(r.Context())

	result, err := h.extractor.Extract(ctx, req.Mode, req.URL)
	var body []byte
	if err == nil {
		body, err = encodeJSON(result)
	}

	if err != nil {
		h.fail(w, requestID, req, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(body)

	h.logger.Info("Extraction succeeded", map[string]interface{}{
		"request_id": requestID,
		"url":        req.URL,
		"mode":       req.Mode.String(),
		"bytes":      len(body),
		"duration":   time.Since(start).String(),
		"result":     string(body),
	})
}

// Fail logs err and answers 500 with the ERROR body, as a failed extraction
// of r would.
func (h *ExtractHandler) Fail(w http.ResponseWriter, r *http.Request, err error) {
	h.fail(w, middleware.RequestIDFromContext(r.Context()), requests.ParseExtractRequest(r), err)
}

func (h *ExtractHandler) fail(w http.ResponseWriter, requestID string, req requests.ExtractRequest, err error) {
	h.logger.Error("Extraction failed", map[string]interface{}{
		"request_id": requestID,
		"url":        req.URL,
		"mode":       req.Mode.String(),
		"kind":       errorKind(err),
		"error":      err.Error(),
		"stack":      coreerrors.StackTrace(err),
	})

	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(errorBody(err, h.opts.ErrorDetail)))
}

// Document adds the extraction endpoint to the OpenAPI description. The
// endpoint itself is served by ServeHTTP rather than through huma.
func (h *ExtractHandler) Document(api huma.API) {
	api.OpenAPI().AddOperation(&huma.Operation{
		OperationID: "extract",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Extract an article or read a feed",
		Description: "Fetches url and returns the extracted article, or the parsed feed when isRssFeed is set. " +
			"Any path is accepted. Failures answer 500 with a plain-text ERROR body.",
		Tags: []string{"Extraction"},
		Parameters: []*huma.Param{
			{
				Name:        requests.QueryURL,
				In:          "query",
				Description: "Absolute http(s) URL of the page or feed",
				Schema:      &huma.Schema{Type: huma.TypeString},
			},
			{
				Name:        requests.QueryIsRSSFeed,
				In:          "query",
				Description: "Present and not one of 0, false, no, off to read a feed",
				Schema:      &huma.Schema{Type: huma.TypeString},
			},
		},
		Responses: map[string]*huma.Response{
			"200": {Description: "Extracted article or feed as JSON"},
			"500": {Description: "ERROR or ERROR: <message>"},
		},
	})
}

// encodeJSON marshals v like JSON.stringify would: no HTML escaping and
// no trailing newline
func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, coreerrors.WrapError(err, "encode result")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
