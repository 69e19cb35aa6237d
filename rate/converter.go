package rate

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd/v3"

	"github.com/optakt/aprate/b"
)

var (
	one     = apd.New(1, 0)
	hundred = apd.New(100, 0)
	ray     = apd.New(1, 27)
)

// guardDigits widens the context used for R ** n so that the rounding of
// every squaring stays below the last digit kept.
const guardDigits = 20

// Converter turns an APR into a per-tick compounding rate.
type Converter struct {
	ctx   *apd.Context
	wide  *apd.Context
	ticks *apd.Decimal
	inv   *apd.Decimal
}

func NewConverter(precision uint32) (*Converter, error) {

	ctx, err := NewContext(precision)
	if err != nil {
		return nil, fmt.Errorf("could not create decimal context: %w", err)
	}

	ticks := apd.New(b.TPY.Int64(), 0)

	inv := new(apd.Decimal)
	_, err = ctx.Quo(inv, one, ticks)
	if err != nil {
		return nil, fmt.Errorf("could not compute tick exponent: %w", err)
	}

	wide := apd.BaseContext.WithPrecision(ctx.Precision + guardDigits)
	wide.Rounding = ctx.Rounding
	wide.Traps = ctx.Traps

	c := Converter{
		ctx:   ctx,
		wide:  wide,
		ticks: ticks,
		inv:   inv,
	}

	return &c, nil
}

// ConvertString parses the APR and converts it.
func (c *Converter) ConvertString(s string) (*Result, error) {
	apr, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return c.Convert(apr)
}

// Convert computes R = (1 + apr / 100) ^ (1 / n), its compounded value R^n and
// the fixed-point rate round(R * 10^27).
func (c *Converter) Convert(apr *apd.Decimal) (*Result, error) {

	base := new(apd.Decimal)
	_, err := c.ctx.Quo(base, apr, hundred)
	if err != nil {
		return nil, fmt.Errorf("could not scale apr: %w", err)
	}
	_, err = c.ctx.Add(base, base, one)
	if err != nil {
		return nil, fmt.Errorf("could not compute growth factor: %w", err)
	}

	if base.Sign() < 0 {
		return nil, fmt.Errorf("growth factor %s has no real root: %w", base, ErrDomainError)
	}

	rate := new(apd.Decimal)
	compounded := new(apd.Decimal)
	if base.IsZero() {
		rate.SetInt64(0)
		compounded.SetInt64(0)
	} else {
		_, err = c.ctx.Pow(rate, base, c.inv)
		if err != nil {
			return nil, fmt.Errorf("could not compute per-tick rate: %w", err)
		}
		exact := new(apd.Decimal)
		_, err = c.wide.Pow(exact, rate, c.ticks)
		if err != nil {
			return nil, fmt.Errorf("could not compound per-tick rate: %w", err)
		}
		_, err = c.ctx.Round(compounded, exact)
		if err != nil {
			return nil, fmt.Errorf("could not round compounded rate: %w", err)
		}
		err = c.pad(rate)
		if err != nil {
			return nil, err
		}
		err = c.pad(compounded)
		if err != nil {
			return nil, err
		}
	}

	scaled := new(apd.Decimal)
	_, err = c.ctx.Mul(scaled, rate, ray)
	if err != nil {
		return nil, fmt.Errorf("could not scale per-tick rate: %w", err)
	}
	rounded := new(apd.Decimal)
	_, err = c.ctx.Quantize(rounded, scaled, 0)
	if err != nil {
		return nil, fmt.Errorf("could not round scaled rate: %w", err)
	}

	value, err := b.FromDecimal(rounded)
	if err != nil {
		return nil, fmt.Errorf("could not convert scaled rate: %w", err)
	}

	res := Result{
		APR:        apr,
		Ticks:      big.NewInt(0).Set(b.TPY),
		Rate:       rate,
		Compounded: compounded,
		Scaled:     value,
	}

	return &res, nil
}

// pad gives an exact one the full working precision, 1.000...0, so it prints
// like every other inexact result.
func (c *Converter) pad(d *apd.Decimal) error {
	if d.Cmp(one) != 0 {
		return nil
	}
	_, err := c.ctx.Quantize(d, one, 1-int32(c.ctx.Precision))
	if err != nil {
		return fmt.Errorf("could not pad %s to working precision: %w", d, err)
	}
	return nil
}
