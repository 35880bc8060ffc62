// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"errors"
	"strings"
)

// ActionableError is an error with context for user-facing error messages.
// It records what operation failed, what input was involved, and suggestions
// for how to fix the issue.
//
//	err := issue.Wrap(parseErr, "parse timestamp", raw).
//		WithSuggestion("pass --zone to localize a naive timestamp")
type ActionableError struct {
	// Operation describes what was being attempted (e.g., "parse timestamp").
	Operation string

	// Input identifies the argument or file involved (optional).
	Input string

	// Suggestions provides hints on how to fix the issue (optional).
	Suggestions []string

	// Cause is the underlying error that triggered this error (optional).
	Cause error
}

// Wrap wraps an error with operation and input context. Returns nil when err
// is nil so call sites can wrap unconditionally.
func Wrap(err error, operation, input string) *ActionableError {
	if err == nil {
		return nil
	}
	return &ActionableError{
		Operation: operation,
		Input:     input,
		Cause:     err,
	}
}

// WithSuggestion appends a remediation hint and returns the error for
// chaining.
func (e *ActionableError) WithSuggestion(s string) *ActionableError {
	e.Suggestions = append(e.Suggestions, s)
	return e
}

// Error implements the error interface.
// Returns a concise message suitable for default (non-verbose) output.
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)

	if e.Input != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Input)
	}

	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause error for use with errors.Is/As.
func (e *ActionableError) Unwrap() error { return e.Cause }

// Format renders the error for display. In verbose mode the full cause chain
// and all suggestions are included.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder

	msg.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n")
		for _, s := range e.Suggestions {
			msg.WriteString("\n  hint: ")
			msg.WriteString(s)
		}
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\ncause chain:")
		for cause := e.Cause; cause != nil; cause = errors.Unwrap(cause) {
			msg.WriteString("\n  - ")
			msg.WriteString(cause.Error())
		}
	}

	return msg.String()
}
