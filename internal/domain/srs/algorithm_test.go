package srs

import (
	"testing"

	"github.com/phrazzld/srs-calc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateNewFactor(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		current  float64
		signal   domain.Signal
		expected float64
	}{
		{
			name:     "failed review should not change factor",
			current:  2.5,
			signal:   domain.SignalFailed,
			expected: 2.5,
		},
		{
			name:     "hard review should decrease factor",
			current:  2.5,
			signal:   domain.SignalHard,
			expected: 2.3, // 2.5 - 0.20 = 2.3
		},
		{
			name:     "partial review should slightly decrease factor",
			current:  2.5,
			signal:   domain.SignalPartial,
			expected: 2.35, // 2.5 - 0.15 = 2.35
		},
		{
			name:     "good review should not change factor",
			current:  2.5,
			signal:   domain.SignalGood,
			expected: 2.5,
		},
		{
			name:     "easy review should increase factor",
			current:  2.5,
			signal:   domain.SignalEasy,
			expected: 2.65, // 2.5 + 0.15 = 2.65
		},
		{
			name:     "minimum factor should be enforced on hard review",
			current:  1.35,
			signal:   domain.SignalHard,
			expected: 1.3, // 1.35 - 0.20 = 1.15, but floor is 1.3
		},
		{
			name:     "minimum factor should be enforced on partial review",
			current:  1.30,
			signal:   domain.SignalPartial,
			expected: 1.3, // already at the floor, must not go below
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			newFactor := calculateNewFactor(tc.current, tc.signal, params)
			assert.InDelta(t, tc.expected, newFactor, 1e-9)
		})
	}
}

func TestCalculateNewInterval(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		current  float64
		factor   float64
		signal   domain.Signal
		expected float64
	}{
		{
			name:     "failed review should not change interval",
			current:  10,
			factor:   2.5,
			signal:   domain.SignalFailed,
			expected: 10,
		},
		{
			name:     "hard review should reset interval",
			current:  45.62,
			factor:   23.15,
			signal:   domain.SignalHard,
			expected: 0,
		},
		{
			name:     "partial review should apply the small multiplier",
			current:  10,
			factor:   2.5,
			signal:   domain.SignalPartial,
			expected: 12, // 10 * 1.2 = 12, factor not involved
		},
		{
			name:     "good review below one day graduates to one day",
			current:  0,
			factor:   2.5,
			signal:   domain.SignalGood,
			expected: 1.0,
		},
		{
			name:     "good review should multiply by factor",
			current:  10,
			factor:   2.5,
			signal:   domain.SignalGood,
			expected: 25, // 10 * 2.5
		},
		{
			name:     "easy review below one day uses the factor, not one day",
			current:  0,
			factor:   2.5,
			signal:   domain.SignalEasy,
			expected: 2.5, // max(1.0, 1.0*2.5)
		},
		{
			name:     "easy review below one day with a small factor still graduates",
			current:  0.5,
			factor:   0.8,
			signal:   domain.SignalEasy,
			expected: 1.0, // max(1.0, 0.8)
		},
		{
			name:     "easy review should multiply by factor",
			current:  10,
			factor:   2.5,
			signal:   domain.SignalEasy,
			expected: 25, // 10 * 2.5, pre-bonus factor
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			newInterval := calculateNewInterval(tc.current, tc.factor, tc.signal, params)
			assert.InDelta(t, tc.expected, newInterval, 1e-9)
		})
	}
}

func TestTransition(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	testCases := []struct {
		name             string
		interval         float64
		factor           float64
		signal           domain.Signal
		expectedInterval float64
		expectedFactor   float64
	}{
		{
			name:             "hard review on a mature item",
			interval:         45.62,
			factor:           23.15,
			signal:           domain.SignalHard,
			expectedInterval: 0.0,
			expectedFactor:   22.95,
		},
		{
			name:             "good review on a new item",
			interval:         0.0,
			factor:           2.50,
			signal:           domain.SignalGood,
			expectedInterval: 1.0,
			expectedFactor:   2.50,
		},
		{
			// The interval uses the factor before the easy bonus:
			// max(1.0, 1.0*2.50) = 2.50, not 1.0 and not 1.0*2.65.
			name:             "easy review on a new item",
			interval:         0.0,
			factor:           2.50,
			signal:           domain.SignalEasy,
			expectedInterval: 2.50,
			expectedFactor:   2.65,
		},
		{
			name:             "good review on a mature item",
			interval:         10.0,
			factor:           2.3,
			signal:           domain.SignalGood,
			expectedInterval: 23.0,
			expectedFactor:   2.3,
		},
		{
			name:             "partial review at the factor floor",
			interval:         10.0,
			factor:           1.30,
			signal:           domain.SignalPartial,
			expectedInterval: 12.0,
			expectedFactor:   1.30,
		},
		{
			name:             "easy review on a mature item uses pre-bonus factor",
			interval:         10.0,
			factor:           2.0,
			signal:           domain.SignalEasy,
			expectedInterval: 20.0, // 10 * 2.0, not 10 * 2.15
			expectedFactor:   2.15,
		},
		{
			name:             "partial review rounds the grown interval",
			interval:         45.62,
			factor:           2.5,
			signal:           domain.SignalPartial,
			expectedInterval: 54.74, // 45.62 * 1.2 = 54.744 → 54.74
			expectedFactor:   2.35,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			newInterval, newFactor, err := Transition(tc.interval, tc.factor, tc.signal, params)
			require.NoError(t, err)
			assert.InDelta(t, tc.expectedInterval, newInterval, 1e-9, "interval")
			assert.InDelta(t, tc.expectedFactor, newFactor, 1e-9, "factor")
		})
	}
}

func TestTransitionFailedReviewIsIdentity(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	states := []struct{ interval, factor float64 }{
		{0.0, 2.50},
		{1.0, 1.30},
		{45.62, 23.15},
		{365.25, 2.11},
	}

	for _, s := range states {
		newInterval, newFactor, err := Transition(s.interval, s.factor, domain.SignalFailed, params)
		require.NoError(t, err)
		assert.InDelta(t, s.interval, newInterval, 1e-9)
		assert.InDelta(t, s.factor, newFactor, 1e-9)
	}
}

func TestTransitionIsDeterministic(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	for sig := domain.SignalFailed; sig <= domain.SignalEasy; sig++ {
		firstInterval, firstFactor, err := Transition(10.0, 2.3, sig, params)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			interval, factor, err := Transition(10.0, 2.3, sig, params)
			require.NoError(t, err)
			assert.Equal(t, firstInterval, interval, "signal %d", sig)
			assert.Equal(t, firstFactor, factor, "signal %d", sig)
		}
	}
}

func TestTransitionEnforcesInvariants(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	// Across every signal and a spread of states: intervals never negative,
	// decreased factors never below the floor, rounding idempotent.
	states := []struct{ interval, factor float64 }{
		{0.0, 1.31},
		{0.99, 1.30},
		{1.0, 2.50},
		{45.62, 23.15},
		{500.0, 1.45},
	}

	for _, s := range states {
		for sig := domain.SignalFailed; sig <= domain.SignalEasy; sig++ {
			newInterval, newFactor, err := Transition(s.interval, s.factor, sig, params)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, newInterval, 0.0)
			assert.Greater(t, newFactor, 0.0)

			if sig == domain.SignalHard || sig == domain.SignalPartial {
				assert.GreaterOrEqual(t, newFactor, params.MinFactor,
					"decreased factor must respect the floor (signal %d)", sig)
			}

			// Rounding is idempotent: results are already at two decimals.
			assert.Equal(t, roundTo2(newInterval), newInterval)
			assert.Equal(t, roundTo2(newFactor), newFactor)
		}
	}
}

func TestTransitionRejectsInvalidInput(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		interval float64
		factor   float64
		signal   domain.Signal
		expected error
	}{
		{
			name:     "negative interval",
			interval: -1.0,
			factor:   2.5,
			signal:   domain.SignalGood,
			expected: domain.ErrInvalidInterval,
		},
		{
			name:     "zero factor",
			interval: 1.0,
			factor:   0,
			signal:   domain.SignalGood,
			expected: domain.ErrInvalidFactor,
		},
		{
			name:     "negative factor",
			interval: 1.0,
			factor:   -2.5,
			signal:   domain.SignalGood,
			expected: domain.ErrInvalidFactor,
		},
		{
			name:     "signal below range",
			interval: 1.0,
			factor:   2.5,
			signal:   domain.Signal(-1),
			expected: domain.ErrInvalidSignal,
		},
		{
			name:     "signal above range",
			interval: 1.0,
			factor:   2.5,
			signal:   domain.Signal(5),
			expected: domain.ErrInvalidSignal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Transition(tc.interval, tc.factor, tc.signal, params)
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestRoundTo2(t *testing.T) {
	t.Parallel() // Enable parallel execution

	assert.InDelta(t, 54.74, roundTo2(54.744), 1e-12)
	assert.InDelta(t, 54.63, roundTo2(54.625), 1e-12) // exact half rounds away from zero
	assert.InDelta(t, 0.0, roundTo2(0.0), 1e-12)
	assert.InDelta(t, 23.0, roundTo2(10.0*2.3), 1e-12)
}
