// Package apperr defines the service-wide error taxonomy and its mapping to
// HTTP responses. Handlers compare against the sentinels with errors.Is;
// wrapped causes stay available for logging but are never sent to clients.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrBadCredentials covers empty login/register fields, unknown emails,
	// and password mismatches. One sentinel and one external message for all
	// three, so a caller cannot probe which accounts exist.
	ErrBadCredentials = errors.New("bad credentials")

	// ErrDuplicateAccount is a unique-index violation on email at insert time.
	ErrDuplicateAccount = errors.New("duplicate account")

	// ErrNotFound means a lookup by identifier returned nothing.
	ErrNotFound = errors.New("not found")

	// ErrNoToken covers a missing, malformed, unverifiable, expired, or
	// unparsable bearer token.
	ErrNoToken = errors.New("no valid token")

	// ErrPersistence is any other store-level failure. Never retried here;
	// callers above the HTTP boundary may.
	ErrPersistence = errors.New("persistence failure")
)

// Status maps an error to its HTTP status code and the fixed external
// message. Unrecognized errors are reported as persistence failures.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, ErrBadCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, ErrNoToken):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, ErrDuplicateAccount):
		return http.StatusConflict, "an account with that email already exists"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
