package rate

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// MinPrecision is the smallest working precision, in significant decimal
// digits, that leaves enough headroom over the 28 digits of the scaled rate.
const MinPrecision = 60

// NewContext returns the decimal context used for every step of the
// conversion. Rounding is pinned to half-even.
func NewContext(precision uint32) (*apd.Context, error) {

	if precision < MinPrecision {
		return nil, fmt.Errorf("precision %d below minimum of %d: %w", precision, MinPrecision, ErrInvalidArgument)
	}

	ctx := apd.BaseContext.WithPrecision(precision)
	ctx.Rounding = apd.RoundHalfEven
	ctx.Traps = apd.DefaultTraps

	return ctx, nil
}
