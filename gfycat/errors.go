package gfycat

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of these,
// so callers can branch with errors.Is.
var (
	// ErrRequest indicates the HTTP round trip itself failed
	ErrRequest = errors.New("request failed")
	// ErrDecode indicates a response body could not be decoded
	ErrDecode = errors.New("failed to decode response")
	// ErrIO indicates a local read failed
	ErrIO = errors.New("i/o failure")
	// ErrExpiration indicates the token expiry could not be represented
	ErrExpiration = errors.New("token expiration out of range")

	// ErrInvalidValue indicates the service rejected a value as invalid
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnauthorized indicates the bearer token was rejected
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMissingEmail indicates the account has no usable email address
	ErrMissingEmail = errors.New("account email missing")
	// ErrUnknown indicates a status code the operation does not map
	ErrUnknown = errors.New("unknown error")
	// ErrNotImplemented indicates the operation is not supported by this client yet
	ErrNotImplemented = errors.New("operation not supported yet")

	// ErrInvalidCredentials indicates empty client credentials
	ErrInvalidCredentials = errors.New("client id and secret are required")
)

// AuthError is returned when acquiring a token fails.
type AuthError struct {
	Kind       error
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *AuthError) Error() string {
	msg := "gfycat auth: " + e.Kind.Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause.
func (e *AuthError) Unwrap() []error {
	return unwrapPair(e.Kind, e.Err)
}

// APIError is returned by every operation after authentication.
type APIError struct {
	Op         string
	Kind       error
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	msg := fmt.Sprintf("gfycat %s: %s", e.Op, e.Kind.Error())
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause.
func (e *APIError) Unwrap() []error {
	return unwrapPair(e.Kind, e.Err)
}

// IsUnauthorized checks if the service rejected the token
func (e *APIError) IsUnauthorized() bool {
	return e.Kind == ErrUnauthorized
}

// IsNotImplemented checks if the operation is a placeholder
func (e *APIError) IsNotImplemented() bool {
	return e.Kind == ErrNotImplemented
}

// MissingFieldError reports a required field absent from a response body.
type MissingFieldError struct {
	Record string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Record, e.Field)
}

func unwrapPair(kind, cause error) []error {
	if cause == nil {
		return []error{kind}
	}
	return []error{kind, cause}
}

func requestError(op string, err error) *APIError {
	return &APIError{Op: op, Kind: ErrRequest, Err: err}
}

func decodeError(op string, err error) *APIError {
	return &APIError{Op: op, Kind: ErrDecode, Err: err}
}

func ioError(op string, err error) *APIError {
	return &APIError{Op: op, Kind: ErrIO, Err: err}
}

func notImplemented(op string) *APIError {
	return &APIError{Op: op, Kind: ErrNotImplemented}
}
