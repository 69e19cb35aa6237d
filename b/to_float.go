package b

import (
	"math/big"
)

// ToFloat converts a fixed-point integer with the given number of decimals
// into a float. Only meant for diagnostics, it loses precision.
func ToFloat(v *big.Int, decimals uint) float64 {
	scale := big.NewInt(0).Exp(D10, big.NewInt(int64(decimals)), nil)
	f, _ := big.NewFloat(0).SetPrec(128).Quo(
		big.NewFloat(0).SetPrec(128).SetInt(v),
		big.NewFloat(0).SetPrec(128).SetInt(scale),
	).Float64()
	return f
}
