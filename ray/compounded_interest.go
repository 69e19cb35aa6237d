package ray

import (
	"math/big"

	"github.com/optakt/aprate/b"
)

// CalculateCompoundedInterest returns the ray growth factor after compounding
// the per-tick rate over the given number of ticks.
func CalculateCompoundedInterest(rate *big.Int, ticks uint64) *big.Int {

	if ticks == 0 {
		return big.NewInt(0).Set(b.RAY)
	}

	return Pow(rate, ticks)
}

// EffectiveAPR compounds the per-tick rate over one year of ticks and returns
// the resulting annual rate as a percentage.
func EffectiveAPR(rate *big.Int) float64 {

	growth := CalculateCompoundedInterest(rate, b.TPY.Uint64())

	interest := big.NewInt(0).Sub(growth, b.RAY)
	interest.Mul(interest, b.D100)

	return b.ToFloat(interest, 27)
}
