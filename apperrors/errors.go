package apperrors

import (
	"errors"
	"fmt"
)

// Kind categorises failures so the HTTP layer can pick a status code.
type Kind string

const (
	KindInput    Kind = "INPUT"
	KindUpstream Kind = "UPSTREAM"
	KindSearch   Kind = "SEARCH"
)

// Error carries a kind, a caller-facing message and the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Input reports a missing or invalid request field.
func Input(message string) error {
	return &Error{Kind: KindInput, Message: message}
}

// Inputf is Input with formatting.
func Inputf(format string, args ...any) error {
	return &Error{Kind: KindInput, Message: fmt.Sprintf(format, args...)}
}

// Upstream wraps a failure of an external service that no fallback absorbed.
func Upstream(message string, err error) error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

// Search reports that the image pipeline exhausted every attempt without a result.
func Search(message string, err error) error {
	return &Error{Kind: KindSearch, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
