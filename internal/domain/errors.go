// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain value fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidInterval is returned when an interval is negative.
	ErrInvalidInterval = errors.New("interval must be greater than or equal to 0")

	// ErrInvalidFactor is returned when an ease factor is zero or negative.
	ErrInvalidFactor = errors.New("factor must be greater than 0")

	// ErrInvalidSignal is returned when a recall signal is outside 0-4.
	ErrInvalidSignal = errors.New("signal must be between 0 and 4")
)
