// ABOUTME: Custom error types for the extraction capabilities
// ABOUTME: Classifies failures as invalid input, upstream fetch errors or parse errors

package errors

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ValidationError represents invalid request input, such as a malformed URL
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message
}

// ExternalAPIError represents a non-success answer from the fetched host
type ExternalAPIError struct {
	StatusCode int
	Message    string
	API        string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// ParseError represents fetched content that could not be understood
type ParseError struct {
	Kind    string // "article" or "feed"
	Message string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %s: %s", e.Kind, e.Message)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// WrapError wraps an error with additional context and records the call stack
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return pkgerrors.Wrap(err, message)
}

// WithStack records the call stack on err without changing its message
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackTrace renders err together with its recorded call stacks. Errors that
// never passed through WrapError or WithStack get the caller's stack instead.
func StackTrace(err error) string {
	if err == nil {
		return ""
	}

	var tracer stackTracer
	if errors.As(err, &tracer) {
		return fmt.Sprintf("%+v", err)
	}

	return fmt.Sprintf("%+v", pkgerrors.WithStack(err))
}
