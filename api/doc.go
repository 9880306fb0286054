// Package api provides the HTTP layer of the article parser.
// A chi router carries two kinds of routes: a handful of ops routes
// registered through huma, and the extraction endpoint which answers
// every other request regardless of path or method.
//
// # Architecture
//
// - server.go: router, huma setup and the listener lifecycle
// - handlers/: the extraction and health handlers
// - dto/: request decoding
// - middleware/: request logging, request IDs and the in-flight cap
//
// # Routes
//
//	GET /healthz        liveness, JSON
//	GET /openapi.json   OpenAPI document
//	GET /docs           interactive documentation
//	*   /*              extraction
//
// # Extraction Contract
//
// The query string carries url and, optionally, isRssFeed. A successful
// extraction answers 200 with the JSON result as the whole body. Any
// failure answers 500 with the plain-text body ERROR, or ERROR: <message>
// when error detail is enabled. The ops routes use huma's RFC 7807
// problem documents instead.
//
// # Usage Example
//
//	server := api.NewServer(cfg.Server, extractService, logger)
//	go server.Start()
//	...
//	server.Stop(ctx)
package api
