package srs

import (
	"time"

	"github.com/phrazzld/srs-calc/internal/domain"
)

// Result is the outcome of one review invocation: the updated scheduling
// state plus the resolved next review date.
type Result struct {
	State      domain.ReviewState
	NextReview time.Time
}

// Service defines the interface for SRS scheduling operations
type Service interface {
	// Review computes the updated state and next review date for a single
	// review event. The service holds no item state between calls.
	Review(state domain.ReviewState, signal domain.Signal) (Result, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
	clock  Clock
}

// NewDefaultService creates a new SRS service with default parameters and
// the system clock.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
		clock:  SystemClock(),
	}
}

// NewService creates a new SRS service with custom parameters and clock.
func NewService(params *Params, clock Clock) Service {
	return &defaultService{
		params: params,
		clock:  clock,
	}
}

// Review implements the Service interface for a single review event.
func (s *defaultService) Review(
	state domain.ReviewState,
	signal domain.Signal,
) (Result, error) {
	newInterval, newFactor, err := Transition(state.Interval, state.Factor, signal, s.params)
	if err != nil {
		return Result{}, err
	}

	// Single clock read per invocation.
	today := s.clock.Now()

	return Result{
		State: domain.ReviewState{
			Interval: newInterval,
			Factor:   newFactor,
		},
		NextReview: NextReviewDate(newInterval, today),
	}, nil
}
