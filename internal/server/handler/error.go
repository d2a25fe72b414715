package handler

import (
	"fmt"
	"sort"
	"strings"
)

// errorBody is the JSON shape written for all error responses.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// Error is a user-facing HTTP error with a status code and message.
// Return one from a handler to control exactly what the client sees.
// Any other error type results in a generic 500.
type Error struct {
	Code    int
	Message string
}

func (e Error) Error() string { return e.Message }

// ClientErr constructs a user-facing 4xx Error.
func ClientErr(code int, msg string) error {
	return Error{Code: code, Message: msg}
}

// ServerErr constructs a 5xx Error whose message is shown to the caller.
func ServerErr(code int, format string, args ...any) error {
	return Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ValidationError carries per-field validation failures.
// Handle renders it as a 400 with the field map in the "errors" key.
type ValidationError struct {
	Fields map[string][]string
}

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], ", ")))
	}
	return strings.Join(msgs, "; ")
}
