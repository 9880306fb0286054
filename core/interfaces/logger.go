package interfaces

// Logger is the structured logging contract used by handlers, middleware
// and capabilities. The production implementation is backed by logrus.
//
// Example usage:
//
//	logger.Info("Extraction succeeded", map[string]interface{}{
//		"url":  "https://example.com/feed.xml",
//		"mode": "feed",
//	})
//
//	logger.Error("Extraction failed", map[string]interface{}{
//		"url":   "https://example.com/feed.xml",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs troubleshooting detail, such as full extraction results.
	Debug(msg string, fields map[string]interface{})

	// Info logs normal request flow.
	Info(msg string, fields map[string]interface{})

	// Warn logs conditions that don't fail a request, such as slow responses.
	Warn(msg string, fields map[string]interface{})

	// Error logs failed requests together with their diagnostic detail.
	Error(msg string, fields map[string]interface{})
}
