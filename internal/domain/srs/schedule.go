package srs

import (
	"math"
	"time"
)

// Clock supplies the current time to the scheduler. Injecting it keeps date
// resolution testable without depending on the wall clock. Each review
// invocation reads the clock exactly once so the computed date and the logged
// timestamps share one time basis.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// SystemClock returns a Clock backed by the real wall clock (UTC).
func SystemClock() Clock {
	return systemClock{}
}

// NextReviewDate converts a computed interval into a concrete calendar date.
//
// The fractional interval is rounded to a whole number of days - half away
// from zero, so 2.5 days schedules 3 days out - and added to today with
// ordinary calendar arithmetic. AddDate handles month and year rollover and
// leap years. A zero interval resolves to today itself: the item is due for
// immediate re-review.
//
// The interval is assumed valid (finite, non-negative); Transition rejects
// anything else before it can reach this point.
func NextReviewDate(newInterval float64, today time.Time) time.Time {
	days := int(math.Round(newInterval))
	return today.AddDate(0, 0, days)
}
