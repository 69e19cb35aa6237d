package ray

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/aprate/b"
)

func fromString(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := big.NewInt(0).SetString(s, 10)
	require.True(t, ok, s)
	return v
}

func TestMul(t *testing.T) {
	half := big.NewInt(0).Div(b.RAY, b.D2)

	assert.Equal(t, "1234", Mul(b.RAY, big.NewInt(1234)).String())
	assert.Equal(t, "2", Mul(big.NewInt(3), half).String())
	assert.Equal(t, "1", Mul(big.NewInt(1), half).String())
	assert.Equal(t, "0", Mul(big.NewInt(1), big.NewInt(0).Sub(half, b.D1)).String())
}

func TestDiv(t *testing.T) {
	two := big.NewInt(0).Mul(b.RAY, b.D2)

	assert.Equal(t, 0, Div(b.RAY, two).Cmp(b.HALF))
	assert.Equal(t, "617", Div(big.NewInt(1234), two).String())
	assert.Equal(t, "1", Div(big.NewInt(3), two).String())
	assert.Equal(t, "0", Div(big.NewInt(1), two).String())
}

func TestPow(t *testing.T) {
	two := big.NewInt(0).Mul(b.RAY, b.D2)
	want := big.NewInt(0).Mul(b.RAY, big.NewInt(1024))

	assert.Equal(t, 0, Pow(two, 10).Cmp(want))
	assert.Equal(t, 0, Pow(two, 0).Cmp(b.RAY))
	assert.Equal(t, 0, Pow(two, 1).Cmp(two))
	assert.Equal(t, "0", Pow(big.NewInt(0), 5).String())
}

func TestCalculateCompoundedInterest(t *testing.T) {
	rate := fromString(t, "1000000000001547125956667610")

	assert.Equal(t, 0, CalculateCompoundedInterest(rate, 0).Cmp(b.RAY))
	assert.Equal(t, 0, CalculateCompoundedInterest(rate, 1).Cmp(rate))

	growth := CalculateCompoundedInterest(rate, b.TPY.Uint64())
	want := fromString(t, "1050000000000000000000000000")
	diff := big.NewInt(0).Sub(growth, want)
	diff.Abs(diff)
	assert.Equal(t, -1, diff.Cmp(big.NewInt(1e12)), "growth %s", growth)
}

func TestEffectiveAPR(t *testing.T) {
	tests := []struct {
		rate string
		want float64
	}{
		{rate: "1000000000000000000000000000", want: 0},
		{rate: "1000000000001547125956667610", want: 5},
		{rate: "1000000000021979552909930329", want: 100},
		{rate: "999999999978020447090552772", want: -50},
	}

	for _, test := range tests {
		assert.InDelta(t, test.want, EffectiveAPR(fromString(t, test.rate)), 1e-9, test.rate)
	}
}

func TestApproximateCompoundedInterest(t *testing.T) {
	rate := fromString(t, "1000000000001547125956667610")

	assert.Equal(t, 0, ApproximateCompoundedInterest(rate, 0).Cmp(b.RAY))
	assert.Equal(t, 0, ApproximateCompoundedInterest(rate, 1).Cmp(rate))

	exact := CalculateCompoundedInterest(rate, b.TPY.Uint64())
	approx := ApproximateCompoundedInterest(rate, b.TPY.Uint64())
	assert.Equal(t, -1, approx.Cmp(exact), "approximation %s should undershoot %s", approx, exact)

	assert.InDelta(t, 5, ApproximateAPR(rate), 1e-4)
	assert.Less(t, ApproximateAPR(rate), EffectiveAPR(rate))

	_, _, t3 := binomialTerms(big.NewInt(0).Sub(rate, b.RAY), b.TPY.Uint64())
	assert.Equal(t, "19357335971747227473532", t3.String())
}

func TestApproximateCompoundedInterest_Negative(t *testing.T) {
	rate := fromString(t, "999999999978020447090552772")

	exact := CalculateCompoundedInterest(rate, b.TPY.Uint64())
	approx := ApproximateCompoundedInterest(rate, b.TPY.Uint64())
	assert.Equal(t, -1, approx.Cmp(exact), "approximation %s should undershoot %s", approx, exact)

	assert.InDelta(t, -50.842478226, ApproximateAPR(rate), 1e-6)
	assert.InDelta(t, -50, EffectiveAPR(rate), 1e-9)
}

func TestBinomialTerms_Symmetric(t *testing.T) {
	for _, base := range []string{"1547125956667610", "21979552909930329", "1", "7"} {
		up := fromString(t, base)
		down := big.NewInt(0).Neg(up)

		u1, u2, u3 := binomialTerms(up, b.TPY.Uint64())
		d1, d2, d3 := binomialTerms(down, b.TPY.Uint64())

		assert.Equal(t, 0, d1.Cmp(big.NewInt(0).Neg(u1)), base)
		assert.Equal(t, 0, d2.Cmp(u2), base)
		assert.Equal(t, 0, d3.Cmp(big.NewInt(0).Neg(u3)), base)
	}
}
