package ray

import (
	"math/big"

	"github.com/optakt/aprate/b"
)

// Pow raises a ray value to an integer power by squaring, with every
// intermediate product rounded through Mul.
func Pow(x *big.Int, exp uint64) *big.Int {

	res := big.NewInt(0).Set(b.RAY)
	base := big.NewInt(0).Set(x)

	for exp != 0 {
		if exp&1 != 0 {
			res = Mul(res, base)
		}
		exp >>= 1
		if exp != 0 {
			base = Mul(base, base)
		}
	}

	return res
}
