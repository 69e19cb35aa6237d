package b

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// FromDecimal converts an integral decimal into a big integer.
func FromDecimal(d *apd.Decimal) (*big.Int, error) {
	if d.Form != apd.Finite {
		return nil, fmt.Errorf("decimal is not finite (%s)", d)
	}
	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	if !frac.IsZero() {
		return nil, fmt.Errorf("decimal is not integral (%s)", d)
	}
	v, ok := big.NewInt(0).SetString(integ.Text('f'), 10)
	if !ok {
		return nil, fmt.Errorf("could not convert decimal to integer (%s)", d)
	}
	return v, nil
}
