// Package apperrors defines the error kinds service operations return
// and their mapping to HTTP status codes. Services classify failures as
// invalid input, missing entity, or internal; the handler layer turns
// the kind into a status and a response message.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidRequest
	KindNotFound
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Invalid reports malformed or missing required input.
func Invalid(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports that a referenced entity does not exist.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected store or runtime failure.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the kind of err. Unclassified errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to the status code the boundary should send.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidRequest:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Detail returns diagnostic text for internal errors, empty otherwise.
// Invalid/not-found messages are already safe for clients; only internal
// errors carry an underlying cause worth exposing separately.
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindInternal && e.Err != nil {
		return e.Err.Error()
	}
	return ""
}
