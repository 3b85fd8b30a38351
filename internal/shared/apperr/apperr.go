// Package apperr defines the error taxonomy shared by services and
// controllers. Services wrap these sentinels with context via fmt.Errorf
// and %w; controllers map them to HTTP status codes with errors.Is.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates the requested id has no matching record.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a record with the same key already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidArgument indicates a missing, empty or malformed parameter.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCapacityExceeded indicates a reservation quantity exceeds the
	// projection's available seats.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the caller lacks the required role.
	ErrForbidden = errors.New("forbidden")

	// ErrStore indicates an I/O failure at the document store; not locally
	// recoverable.
	ErrStore = errors.New("store failure")
)

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// InvalidArgumentf wraps ErrInvalidArgument with a formatted message.
func InvalidArgumentf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidArgument)...)
}

// Storef wraps ErrStore around an underlying store error.
func Storef(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrStore)
}

// HTTPStatus maps an error to the HTTP status code a controller should
// respond with. Unknown errors map to 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrCapacityExceeded):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
