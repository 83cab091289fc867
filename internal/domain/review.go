package domain

import "math"

// Signal represents the recall quality reported for a single review event,
// from complete failure (0) to effortless recall (4).
type Signal int

// Possible recall signal values.
const (
	SignalFailed  Signal = 0 // complete failure to recall
	SignalHard    Signal = 1 // recognized but answered wrong
	SignalPartial Signal = 2 // partial recall
	SignalGood    Signal = 3 // correct with effort
	SignalEasy    Signal = 4 // effortless recall
)

// Defaults applied when a caller submits a review for an item with no prior
// history. Callers substitute these before invoking the engine; the engine
// itself never defaults.
const (
	DefaultFactor   = 2.50
	DefaultInterval = 0.0
)

// ReviewState is the full scheduling state of a single item. The service is
// stateless: the caller supplies the state with each request and receives the
// updated state back.
type ReviewState struct {
	Interval float64 `json:"interval"` // days until the next review
	Factor   float64 `json:"factor"`   // ease coefficient, always > 0
}

// NewItemState returns the state used for an item with no review history.
// New items are due immediately.
func NewItemState() ReviewState {
	return ReviewState{
		Interval: DefaultInterval,
		Factor:   DefaultFactor,
	}
}

// Validate checks if the ReviewState has valid data.
// Returns an error if any field fails validation.
func (s ReviewState) Validate() error {
	if s.Interval < 0 || math.IsNaN(s.Interval) || math.IsInf(s.Interval, 0) {
		return ErrInvalidInterval
	}

	if s.Factor <= 0 || math.IsNaN(s.Factor) || math.IsInf(s.Factor, 0) {
		return ErrInvalidFactor
	}

	return nil
}

// Validate checks that the signal is within the supported 0-4 range.
func (sig Signal) Validate() error {
	if sig < SignalFailed || sig > SignalEasy {
		return ErrInvalidSignal
	}
	return nil
}
