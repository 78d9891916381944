package pokedex

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrPokedex is matched by every error type returned from this package.
var ErrPokedex = errors.New("pokedex error")

// InvalidArgumentError reports a malformed Query. No request is made.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "pokedex: invalid lookup arguments: " + e.Reason
}

// Is reports whether target is ErrPokedex.
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrPokedex }

// NotFoundError reports that the catalog has no such Pokemon.
type NotFoundError struct {
	Err error
}

func (e *NotFoundError) Error() string {
	return "pokedex: the requested pokemon was not found"
}

// HTTPCode returns 404.
func (e *NotFoundError) HTTPCode() int { return http.StatusNotFound }

// Unwrap returns the underlying HTTP error.
func (e *NotFoundError) Unwrap() error { return e.Err }

// Is reports whether target is ErrPokedex.
func (e *NotFoundError) Is(target error) bool { return target == ErrPokedex }

// RemoteError reports a non-2xx, non-404 response.
type RemoteError struct {
	Err        error
	StatusCode int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("pokedex: an HTTP error occurred (status code: %d)", e.StatusCode)
}

// HTTPCode returns the response status code.
func (e *RemoteError) HTTPCode() int { return e.StatusCode }

// Unwrap returns the underlying HTTP error.
func (e *RemoteError) Unwrap() error { return e.Err }

// Is reports whether target is ErrPokedex.
func (e *RemoteError) Is(target error) bool { return target == ErrPokedex }

// TransportError reports that no HTTP response was obtained: DNS, connection
// or timeout failures.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("pokedex: request failed: %v", e.Err)
}

// Unwrap returns the transport failure.
func (e *TransportError) Unwrap() error { return e.Err }

// Is reports whether target is ErrPokedex.
func (e *TransportError) Is(target error) bool { return target == ErrPokedex }

// MissingDataError reports a response that lacks data a Pokemon requires.
// The message is fixed; the wrapped error names the offending field.
type MissingDataError struct {
	Err error
}

func (e *MissingDataError) Error() string {
	return "pokedex: a required piece of data was not found for the requested pokemon"
}

// Unwrap returns the normalization failure.
func (e *MissingDataError) Unwrap() error { return e.Err }

// Is reports whether target is ErrPokedex.
func (e *MissingDataError) Is(target error) bool { return target == ErrPokedex }
