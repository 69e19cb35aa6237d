package ray

import (
	"math/big"

	"github.com/optakt/aprate/b"
)

// Mul multiplies two non-negative ray values, rounding half up:
// => (x * y + RAY / 2) / RAY
func Mul(x *big.Int, y *big.Int) *big.Int {
	out := big.NewInt(0).Mul(x, y)
	out.Add(out, b.HALF)
	out.Div(out, b.RAY)
	return out
}

// Div divides two non-negative ray values, rounding half up:
// => (x * RAY + RAY / 2) / y
func Div(x *big.Int, y *big.Int) *big.Int {
	out := big.NewInt(0).Mul(x, b.RAY)
	out.Add(out, b.HALF)
	out.Div(out, y)
	return out
}
