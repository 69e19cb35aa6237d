package rate

import (
	"fmt"
	"io"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Result holds every value derived from a single APR.
type Result struct {
	APR        *apd.Decimal // input percentage
	Ticks      *big.Int     // compounding periods per year
	Rate       *apd.Decimal // per-tick growth factor R
	Compounded *apd.Decimal // R ** Ticks, should match 1 + APR / 100
	Scaled     *big.Int     // round(R * 10^27)
}

// Print writes the human-readable report.
func (r *Result) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Input APR: %s%%\nn: %d\nR: %s\nR ** n: %s\nrate: %s\n",
		r.APR, r.Ticks, r.Rate, r.Compounded, r.Scaled,
	)
	return err
}
