package llm

import (
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when a provider call is attempted without credentials
var ErrNotConfigured = errors.New("llm provider is not configured")

// ErrEmptyResponse is returned when the provider completion carries no content
var ErrEmptyResponse = errors.New("llm provider returned no content")

// HTTPError represents a non-2xx response from the provider API
type HTTPError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("llm provider returned status %d: %s", e.StatusCode, e.Body)
}

// ParseError represents a failure to parse the provider completion into the
// expected JSON shape. Callers must not retry: the request is terminally failed.
type ParseError struct {
	Op  string // Operation that caused the error
	Err error  // Original error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Err == nil {
		return "llm parse error: " + e.Op
	}
	return "llm parse error: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IntentParseError represents a failure while extracting an intent from a transcript
type IntentParseError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *IntentParseError) Error() string {
	if e.Err == nil {
		return "intent parse error: " + e.Op
	}
	return "intent parse error: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *IntentParseError) Unwrap() error {
	return e.Err
}
