package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/srs-calc/internal/codec"
	"github.com/phrazzld/srs-calc/internal/domain"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Precondition violations from the transition engine
	case errors.Is(err, domain.ErrInvalidInterval),
		errors.Is(err, domain.ErrInvalidFactor),
		errors.Is(err, domain.ErrInvalidSignal),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Unparsable serialized state, rejected at the transport boundary
	case errors.Is(err, codec.ErrMalformed),
		errors.Is(err, codec.ErrUnknownFormat):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInterval):
		return "Interval must be greater than or equal to 0"

	case errors.Is(err, domain.ErrInvalidFactor):
		return "Factor must be greater than 0"

	case errors.Is(err, domain.ErrInvalidSignal):
		return "Signal must be an integer between 0 and 4"

	case errors.Is(err, codec.ErrMalformed):
		return "Invalid 'srs' string format. Expected 'Day, Mon DayNum F.FF/I.II', e.g. 'Fri, Apr 25 23.15/45.62'"

	case errors.Is(err, codec.ErrUnknownFormat):
		return "Unknown serialization format"

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	default:
		return "An unexpected error occurred"
	}
}
