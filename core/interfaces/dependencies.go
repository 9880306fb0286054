// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the extraction capabilities

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// HTTPClient fetches target documents
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
