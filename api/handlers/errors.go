// ABOUTME: Error handling utilities for the extraction handler
// ABOUTME: Renders the plain-text ERROR body and classifies failures for logging

package handlers

import (
	"strings"

	coreerrors "article-parser-api/core/errors"
)

const errorPrefix = "ERROR"

// errorBody renders the body of a failed extraction. With detail the error
// message follows the prefix on the same line.
func errorBody(err error, detail bool) string {
	if !detail || err == nil {
		return errorPrefix
	}

	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		return errorPrefix
	}
	return errorPrefix + ": " + msg
}

// errorKind names the failure class of err for log fields
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case coreerrors.IsValidation(err):
		return "validation"
	case coreerrors.IsExternalAPI(err):
		return "upstream"
	case coreerrors.IsParse(err):
		return "parse"
	default:
		return "internal"
	}
}
