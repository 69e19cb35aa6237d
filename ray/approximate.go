package ray

import (
	"math/big"

	"github.com/optakt/aprate/b"
)

// ApproximateCompoundedInterest uses the three-term binomial expansion from AAVE v2
// instead of exact exponentiation:
// => https://github.com/aave/protocol-v2/blob/master/contracts/protocol/libraries/math/MathUtils.sol#L32-L70
//
// The per-tick rate is given in ray, so its excess over one ray is the base.
func ApproximateCompoundedInterest(rate *big.Int, ticks uint64) *big.Int {

	if ticks == 0 {
		return big.NewInt(0).Set(b.RAY)
	}

	base := big.NewInt(0).Sub(rate, b.RAY)
	t1, t2, t3 := binomialTerms(base, ticks)

	out := big.NewInt(0).Add(b.RAY, t1)
	out.Add(out, t2)
	out.Add(out, t3)

	return out
}

// binomialTerms returns, in ray,
//
//	t1 = n * base
//	t2 = n(n-1) * base^2 / (2 * RAY)
//	t3 = n(n-1)(n-2) * base^3 / (6 * RAY^2)
//
// Per-tick bases are far below one ray, so powers of the base are never
// rounded on their own; each term is divided once, truncating toward zero.
func binomialTerms(base *big.Int, ticks uint64) (*big.Int, *big.Int, *big.Int) {

	exp := big.NewInt(0).SetUint64(ticks)
	em1 := big.NewInt(0).Sub(exp, b.D1)
	em2 := big.NewInt(0).Sub(exp, b.D2)
	if em2.Cmp(b.D0) < 0 {
		em2 = big.NewInt(0)
	}

	t1 := big.NewInt(0).Mul(exp, base)

	t2 := big.NewInt(0).Mul(exp, em1)
	t2.Mul(t2, base)
	t2.Mul(t2, base)
	d2 := big.NewInt(0).Mul(b.D2, b.RAY)
	t2.Quo(t2, d2)

	t3 := big.NewInt(0).Mul(exp, em1)
	t3.Mul(t3, em2)
	t3.Mul(t3, base)
	t3.Mul(t3, base)
	t3.Mul(t3, base)
	d3 := big.NewInt(0).Mul(b.D6, b.RAY)
	d3.Mul(d3, b.RAY)
	t3.Quo(t3, d3)

	return t1, t2, t3
}

// ApproximateAPR is EffectiveAPR computed with the binomial approximation.
func ApproximateAPR(rate *big.Int) float64 {

	growth := ApproximateCompoundedInterest(rate, b.TPY.Uint64())

	interest := big.NewInt(0).Sub(growth, b.RAY)
	interest.Mul(interest, b.D100)

	return b.ToFloat(interest, 27)
}
