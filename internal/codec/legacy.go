package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/phrazzld/srs-calc/internal/domain"
)

// legacySRSPattern matches the historical "Day, Mon DayNum F.FF/I.II" form,
// e.g. "Fri, Apr 25 23.15/45.62". The leading date names the last scheduled
// review and is ignored on input; only the factor/interval pair carries
// state.
var legacySRSPattern = regexp.MustCompile(
	`^([A-Za-z]{3}),\s*([A-Za-z]{3})\s+(\d{1,2})\s+(\d+\.\d+)/(\d+\.\d+)$`,
)

// legacyCodec implements the original weekday-prefixed encoding.
type legacyCodec struct{}

// NewLegacyCodec returns the codec for the "Fri, Apr 25 23.15/45.62" format.
func NewLegacyCodec() Codec {
	return legacyCodec{}
}

func (legacyCodec) Name() string {
	return "legacy"
}

// Parse extracts the factor and interval from a legacy srs string.
func (legacyCodec) Parse(s string) (domain.ReviewState, error) {
	match := legacySRSPattern.FindStringSubmatch(s)
	if match == nil {
		return domain.ReviewState{}, fmt.Errorf(
			"%w: expected 'Day, Mon DayNum F.FF/I.II', e.g. 'Fri, Apr 25 23.15/45.62'",
			ErrMalformed,
		)
	}

	factor, err := strconv.ParseFloat(match[4], 64)
	if err != nil {
		return domain.ReviewState{}, fmt.Errorf("%w: invalid factor %q", ErrMalformed, match[4])
	}

	interval, err := strconv.ParseFloat(match[5], 64)
	if err != nil {
		return domain.ReviewState{}, fmt.Errorf("%w: invalid interval %q", ErrMalformed, match[5])
	}

	return domain.ReviewState{Interval: interval, Factor: factor}, nil
}

// Format renders the next review date and updated state back into the
// legacy form.
func (legacyCodec) Format(next time.Time, state domain.ReviewState) string {
	return fmt.Sprintf("%s %.2f/%.2f", next.Format("Mon, Jan 2"), state.Factor, state.Interval)
}
