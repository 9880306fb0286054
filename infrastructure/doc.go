// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: net/http client with bounded bodies and optional retries
// - logger/structured: logrus logger with optional rotating file output
//
// # HTTP Client Example
//
//	client := standard.NewStandardHTTPClient(cfg.Fetch, &middleware.LoggingRoundTripper{
//	    Logger: logger,
//	})
//	resp, err := client.Get(ctx, "https://example.com/feed.xml")
//
// # Logger Example
//
//	logger, err := structured.New(cfg.Log)
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//	logger.Info("Server started", map[string]interface{}{"port": 277})
package infrastructure
