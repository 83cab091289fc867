package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/phrazzld/srs-calc/internal/domain"
)

// tagPattern matches the date-stamped tag form "[[date:YYYY-MM-DD]] F.FF/I.II".
var tagPattern = regexp.MustCompile(
	`^\[\[date:(\d{4}-\d{2}-\d{2})\]\]\s+(\d+\.\d+)/(\d+\.\d+)$`,
)

// tagCodec implements the current "[[date:YYYY-MM-DD]] F.FF/I.II" encoding.
type tagCodec struct{}

// NewTagCodec returns the codec for the date-stamped tag format.
func NewTagCodec() Codec {
	return tagCodec{}
}

func (tagCodec) Name() string {
	return "tag"
}

// Parse extracts the factor and interval from a tag string. The embedded
// date is validated but, as with the legacy format, carries no state.
func (tagCodec) Parse(s string) (domain.ReviewState, error) {
	match := tagPattern.FindStringSubmatch(s)
	if match == nil {
		return domain.ReviewState{}, fmt.Errorf(
			"%w: expected '[[date:YYYY-MM-DD]] F.FF/I.II'", ErrMalformed,
		)
	}

	if _, err := time.Parse("2006-01-02", match[1]); err != nil {
		return domain.ReviewState{}, fmt.Errorf("%w: invalid date %q", ErrMalformed, match[1])
	}

	factor, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return domain.ReviewState{}, fmt.Errorf("%w: invalid factor %q", ErrMalformed, match[2])
	}

	interval, err := strconv.ParseFloat(match[3], 64)
	if err != nil {
		return domain.ReviewState{}, fmt.Errorf("%w: invalid interval %q", ErrMalformed, match[3])
	}

	return domain.ReviewState{Interval: interval, Factor: factor}, nil
}

// Format renders the next review date and updated state as a tag string,
// e.g. "[[date:2024-04-26]] 22.95/0.00".
func (tagCodec) Format(next time.Time, state domain.ReviewState) string {
	return fmt.Sprintf("[[date:%s]] %.2f/%.2f", next.Format("2006-01-02"), state.Factor, state.Interval)
}
