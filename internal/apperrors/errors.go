package apperrors

import (
	"errors"
	"net/http"
)

// These sentinel errors define the application-level error conditions.
// Services wrap them with fmt.Errorf("...: %w") and handlers map them to
// HTTP status codes with StatusCode.
var (
	// ErrNotFound indicates a requested resource was not found.
	ErrNotFound = errors.New("resource not found")
	// ErrValidation indicates failure during data validation.
	ErrValidation = errors.New("validation failed")
	// ErrBadRequest indicates a malformed request from the caller.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized indicates a missing or unusable caller identity.
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrRateLimited indicates an operation was rate limited.
	ErrRateLimited = errors.New("rate limited")
	// ErrDatabase indicates a general database interaction error.
	ErrDatabase = errors.New("database error")
)

// IsNotFoundError checks if the error is or wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if the error is or wraps ErrValidation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsBadRequestError checks if the error is or wraps ErrBadRequest.
func IsBadRequestError(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

// IsUnauthorizedError checks if the error is or wraps ErrUnauthorized.
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsRateLimitedError checks if the error is or wraps ErrRateLimited.
func IsRateLimitedError(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsDatabaseError checks if the error is or wraps ErrDatabase.
func IsDatabaseError(err error) bool {
	return errors.Is(err, ErrDatabase)
}

// StatusCode maps an application error to the HTTP status it should produce.
// Anything unrecognised is a 500.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidationError(err), IsBadRequestError(err):
		return http.StatusBadRequest
	case IsUnauthorizedError(err):
		return http.StatusUnauthorized
	case IsNotFoundError(err):
		return http.StatusNotFound
	case IsRateLimitedError(err):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
