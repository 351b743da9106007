package ratio

import (
	"golang.org/x/exp/constraints"

	"github.com/tsiemens/ratio/util"
)

// The integer approximations below work on the raw fields and do not need a
// reduced value. A zero denominator panics like any integer division by zero.

// Float64 returns Numerator/Denominator in floating point. A zero denominator
// gives ±Inf, or NaN for 0/0.
func (r Rational[T]) Float64() float64 {
	return float64(r.Numerator) / float64(r.Denominator)
}

func Float64[T constraints.Integer](r Rational[T]) float64 {
	return r.Float64()
}

// Truncate returns the integer quotient rounded toward zero.
func (r Rational[T]) Truncate() T {
	return r.Numerator / r.Denominator
}

func Truncate[T constraints.Integer](r Rational[T]) T {
	return r.Truncate()
}

// quo returns the truncated quotient and the sign of the discarded fraction.
func (r Rational[T]) quo() (q T, frac int) {
	q, rem := r.Numerator/r.Denominator, r.Numerator%r.Denominator
	switch {
	case rem == 0:
		return q, 0
	case (rem < 0) != (r.Denominator < 0):
		return q, -1
	}
	return q, 1
}

// Floor returns the greatest integer not greater than r.
func (r Rational[T]) Floor() T {
	q, frac := r.quo()
	if frac < 0 {
		q--
	}
	return q
}

func Floor[T constraints.Integer](r Rational[T]) T {
	return r.Floor()
}

// Ceil returns the least integer not less than r.
func (r Rational[T]) Ceil() T {
	q, frac := r.quo()
	if frac > 0 {
		q++
	}
	return q
}

func Ceil[T constraints.Integer](r Rational[T]) T {
	return r.Ceil()
}

// Round returns the integer nearest to r, rounding half away from zero:
// 5/2 rounds to 3 and -5/2 to -3.
func (r Rational[T]) Round() T {
	q, frac := r.quo()
	if frac == 0 {
		return q
	}
	// |rem| >= |d|/2, written to avoid doubling rem.
	rem := util.Abs(r.Numerator % r.Denominator)
	if rem >= util.Abs(r.Denominator)-rem {
		if frac < 0 {
			q--
		} else {
			q++
		}
	}
	return q
}

func Round[T constraints.Integer](r Rational[T]) T {
	return r.Round()
}
