package fastbill

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an Error.
type ErrorKind string

// Error kinds.
const (
	// ErrKindConnection marks transport failures (DNS, socket, timeout).
	ErrKindConnection ErrorKind = "connection"
	// ErrKindInvalidRequest marks errors reported by FastBill or unparsable responses.
	ErrKindInvalidRequest ErrorKind = "invalid_request"
	// ErrKindType marks arguments that do not have the expected shape.
	ErrKindType ErrorKind = "type"
	// ErrKindValue marks arguments with the right shape but an unacceptable value.
	ErrKindValue ErrorKind = "value"
)

// Error is the error type returned by every FastBill operation.
type Error struct {
	Kind    ErrorKind
	Message string
	// Detail is the wrapped cause, if any.
	Detail error
	// RemoteErrors holds the ERRORS list of the response envelope.
	RemoteErrors []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Detail)
	}

	return e.Message
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Detail
}

// Is matches any *Error of the same kind when target carries no message,
// so errors.Is(err, ErrConnection) works through wrapping layers.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Message == "" && t.Kind == e.Kind
}

// Kind sentinels for use with errors.Is.
var (
	ErrConnection     = &Error{Kind: ErrKindConnection}
	ErrInvalidRequest = &Error{Kind: ErrKindInvalidRequest}
	ErrTypeMismatch   = &Error{Kind: ErrKindType}
	ErrValue          = &Error{Kind: ErrKindValue}
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrEmailRequired        = errors.New("email is required")
	ErrAPIKeyRequired       = errors.New("API key is required")
	ErrMissingResponse      = errors.New("response envelope has no RESPONSE field")
	ErrPublisherUnavailable = errors.New("event publisher unavailable")
)

// NewConnectionError creates a connection error.
func NewConnectionError(message string, detail error) *Error {
	return &Error{Kind: ErrKindConnection, Message: message, Detail: detail}
}

// NewInvalidRequestError creates an invalid request error.
func NewInvalidRequestError(message string, detail error) *Error {
	return &Error{Kind: ErrKindInvalidRequest, Message: message, Detail: detail}
}

// NewTypeError creates a type error.
func NewTypeError(message string, detail error) *Error {
	return &Error{Kind: ErrKindType, Message: message, Detail: detail}
}

// NewValueError creates a value error.
func NewValueError(message string, detail error) *Error {
	return &Error{Kind: ErrKindValue, Message: message, Detail: detail}
}

// NewRemoteError creates the invalid request error for a non-empty ERRORS
// list. The first entry becomes the message.
func NewRemoteError(remoteErrors []string) *Error {
	message := "unknown error"
	if len(remoteErrors) > 0 {
		message = remoteErrors[0]
	}

	return &Error{
		Kind:         ErrKindInvalidRequest,
		Message:      message,
		RemoteErrors: remoteErrors,
	}
}

// IsConnectionError reports whether err is or wraps a connection error.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsInvalidRequestError reports whether err is or wraps an invalid request error.
func IsInvalidRequestError(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsTypeError reports whether err is or wraps a type error.
func IsTypeError(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsValueError reports whether err is or wraps a value error.
func IsValueError(err error) bool {
	return errors.Is(err, ErrValue)
}

// RemoteErrors returns the ERRORS list reported by FastBill anywhere in the
// chain of err, or nil.
func RemoteErrors(err error) []string {
	for err != nil {
		fbErr := &Error{}
		if !errors.As(err, &fbErr) {
			return nil
		}

		if len(fbErr.RemoteErrors) > 0 {
			return fbErr.RemoteErrors
		}

		err = fbErr.Detail
	}

	return nil
}
