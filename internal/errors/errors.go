// Package errors defines typed errors with categories for user-friendly reporting.
// Every failure the client can hit falls into one of four kinds: validation
// problems caught before any network call, transport failures with no
// response, error responses from the server, and failures constructing the
// request itself. Callers never branch on the kind; they display Message.
package errors

import "errors"

// Kind is a machine-readable error category.
type Kind string

const (
	// Validation indicates client-side input rejection; nothing was sent.
	Validation Kind = "validation"
	// Connection indicates the request was sent but no response arrived,
	// including timeouts.
	Connection Kind = "connection"
	// Server indicates a response with a non-success status.
	Server Kind = "server"
	// Request indicates the request could not be constructed or serialized.
	Request Kind = "request"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string { return e.Message }

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Message returns the user-facing text for any error. Typed errors report
// their message; everything else falls back to Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *E
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// KindOf returns the category of a typed error, or "" for untyped errors.
func KindOf(err error) Kind {
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
