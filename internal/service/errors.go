package service

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers classify by these; clients never see anything
// but the envelope status and message.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrInternal      = errors.New("internal error")
	ErrMisconfigured = errors.New("config invalid")

	// Token failures are distinct kinds internally, but all of them wrap
	// ErrUnauthorized: the API deliberately answers an opaque 401 no
	// matter whether a token is expired, malformed or already used.
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrUnauthorized)
	ErrTokenInvalid = fmt.Errorf("%w: token invalid", ErrUnauthorized)
	ErrTokenReused  = fmt.Errorf("%w: token reused or expired", ErrUnauthorized)
)

// Error pairs an error kind with the human-readable message the envelope
// carries to the client.
type Error struct {
	kind    error
	message string
}

func (e *Error) Error() string { return e.message }

func (e *Error) Unwrap() error { return e.kind }

// NewError pairs a kind with a client-facing message.
func NewError(kind error, message string) error {
	return &Error{kind: kind, message: message}
}

func apiError(kind error, message string) error {
	return NewError(kind, message)
}

// ErrorMessage extracts the client-facing message, or "" when err carries
// none.
func ErrorMessage(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.message
	}
	return ""
}
