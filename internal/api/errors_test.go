package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/srs-calc/internal/codec"
	"github.com/phrazzld/srs-calc/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid interval", domain.ErrInvalidInterval, http.StatusBadRequest},
		{"invalid factor", domain.ErrInvalidFactor, http.StatusBadRequest},
		{"invalid signal", domain.ErrInvalidSignal, http.StatusBadRequest},
		{"malformed state string", codec.ErrMalformed, http.StatusBadRequest},
		{"unknown codec format", codec.ErrUnknownFormat, http.StatusBadRequest},
		{"wrapped domain error", fmt.Errorf("review failed: %w", domain.ErrInvalidSignal), http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel() // Enable parallel execution

	assert.Equal(t,
		"Signal must be an integer between 0 and 4",
		GetSafeErrorMessage(domain.ErrInvalidSignal))

	assert.Equal(t,
		"Factor must be greater than 0",
		GetSafeErrorMessage(fmt.Errorf("transition: %w", domain.ErrInvalidFactor)))

	// Unknown errors must not leak their contents.
	msg := GetSafeErrorMessage(errors.New("pq: connection refused at 10.0.0.5"))
	assert.Equal(t, "An unexpected error occurred", msg)

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}
