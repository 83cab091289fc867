package srs

import (
	"math"

	"github.com/phrazzld/srs-calc/internal/domain"
)

// calculateNewFactor determines the new ease factor based on the recall signal.
//
// The ease factor represents the item's difficulty - higher values mean the
// item is easier and intervals will grow faster. Hard and partial reviews
// lower the factor (never past params.MinFactor), easy reviews raise it, and
// failed or good reviews leave it untouched.
func calculateNewFactor(
	currentFactor float64,
	signal domain.Signal,
	params *Params,
) float64 {
	switch signal {
	case domain.SignalHard:
		return math.Max(params.MinFactor, currentFactor-params.HardFactorPenalty)
	case domain.SignalPartial:
		return math.Max(params.MinFactor, currentFactor-params.PartialFactorPenalty)
	case domain.SignalEasy:
		return currentFactor + params.EasyFactorBonus
	default:
		// Failed and good reviews leave the factor unchanged.
		return currentFactor
	}
}

// calculateNewInterval determines the new interval in days based on the
// recall signal and the current state.
//
// The factor argument is the item's factor BEFORE this review's adjustment.
// For good and easy reviews the interval multiplies by this pre-update value;
// applying the same-step easy bonus to the same-step interval growth would
// compound the two and produce runaway intervals.
//
// Behavior per signal:
//   - Failed: interval unchanged (the review never happened, schedule-wise)
//   - Hard: interval resets to 0 (due immediately)
//   - Partial: interval grows by the small partial multiplier
//   - Good: first graduation to 1 day when below a day, else interval x factor
//   - Easy: at least one full day, scaled by the factor either way
func calculateNewInterval(
	currentInterval float64,
	currentFactor float64,
	signal domain.Signal,
	params *Params,
) float64 {
	switch signal {
	case domain.SignalHard:
		return 0

	case domain.SignalPartial:
		return currentInterval * params.PartialMultiplier

	case domain.SignalGood:
		if currentInterval < 1 {
			return 1.0
		}
		return currentInterval * currentFactor

	case domain.SignalEasy:
		if currentInterval < 1 {
			return math.Max(1.0, 1.0*currentFactor)
		}
		return currentInterval * currentFactor

	default:
		// Failed: no change.
		return currentInterval
	}
}

// Transition computes the next (interval, factor) pair for one review event.
//
// It validates its preconditions strictly - a factor at or below zero, a
// negative interval, or a signal outside 0-4 is a contract violation and is
// returned as an error, never silently clamped. On success both results are
// clamped (interval to >= 0) and rounded to two decimal places; that rounding
// is authoritative, callers compare and render the rounded values.
//
// The function is pure: no I/O, no clock, no shared state. Repeated calls
// with the same inputs yield identical results.
func Transition(
	currentInterval float64,
	currentFactor float64,
	signal domain.Signal,
	params *Params,
) (newInterval, newFactor float64, err error) {
	state := domain.ReviewState{Interval: currentInterval, Factor: currentFactor}
	if err := state.Validate(); err != nil {
		return 0, 0, err
	}
	if err := signal.Validate(); err != nil {
		return 0, 0, err
	}

	// Interval first, against the pre-update factor. Order matters for good
	// and easy reviews.
	newInterval = calculateNewInterval(currentInterval, currentFactor, signal, params)
	newFactor = calculateNewFactor(currentFactor, signal, params)

	newInterval = roundTo2(math.Max(0, newInterval))
	newFactor = roundTo2(newFactor)

	return newInterval, newFactor, nil
}

// roundTo2 rounds to two decimal places, half away from zero.
func roundTo2(x float64) float64 {
	return math.Round(x*100) / 100
}
