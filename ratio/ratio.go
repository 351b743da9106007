// Package ratio provides an exact rational number type over any fixed-width
// integer element type.
//
// A Rational[T] is a plain (numerator, denominator) pair. Values built with New
// or produced by arithmetic are in lowest terms with the sign carried by the
// numerator, but raw values may hold anything, including a zero denominator.
// Zero denominators are never validated: integer-valued operations on them
// panic exactly as the corresponding integer division would, and Float64
// yields an IEEE infinity or NaN.
//
// The numerator*denominator cross products used by comparison and arithmetic
// are computed in T and may overflow for large operands.
package ratio

import (
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/tsiemens/ratio/util"
)

// ErrUnsupported is returned when an operation is undefined for the element
// type, such as negating a value with an unsigned element type.
var ErrUnsupported = errors.New("unsupported operation")

// Rational is a fraction Numerator/Denominator of element type T.
// The zero value is 0/0, which is not a valid number; use New or FromInt.
type Rational[T constraints.Integer] struct {
	Numerator   T
	Denominator T
}

// Make stores n/d as given, reducing it first when reduce is set.
func Make[T constraints.Integer](n, d T, reduce bool) Rational[T] {
	r := Rational[T]{Numerator: n, Denominator: d}
	if reduce {
		r.Reduce()
	}
	return r
}

// New returns n/d in lowest terms.
func New[T constraints.Integer](n, d T) Rational[T] {
	return Make(n, d, true)
}

// FromInt returns n/1.
func FromInt[T constraints.Integer](n T) Rational[T] {
	return Make(n, 1, true)
}

// Reduce puts r in lowest terms, moving the sign of a negative denominator to
// the numerator, and returns the result.
//
// 0/d becomes 0/1 and n/0 becomes ±1/0. Reducing 0/0 divides by zero and
// panics.
func (r *Rational[T]) Reduce() Rational[T] {
	if r.Denominator < 0 {
		r.Numerator = -r.Numerator
		r.Denominator = -r.Denominator
	}
	g := util.GCD(r.Denominator, r.Numerator)
	r.Numerator /= g
	r.Denominator /= g
	return *r
}

// Reduce returns r in lowest terms without modifying the caller's copy.
func Reduce[T constraints.Integer](r Rational[T]) Rational[T] {
	return r.Reduce()
}

// Negate flips the sign of r in place and returns the result. It fails with
// ErrUnsupported, leaving r unchanged, when T is unsigned.
func (r *Rational[T]) Negate() (Rational[T], error) {
	if !util.IsSigned[T]() {
		return *r, fmt.Errorf("cannot negate %s with element type %T: %w", r, r.Numerator, ErrUnsupported)
	}
	r.Numerator = -r.Numerator
	return *r, nil
}

// Neg returns -r.
func Neg[T constraints.Integer](r Rational[T]) (Rational[T], error) {
	return r.Negate()
}

// Invert swaps the numerator and denominator of r and returns the result.
// Inverting zero yields a zero denominator.
func (r *Rational[T]) Invert() Rational[T] {
	r.Numerator, r.Denominator = r.Denominator, r.Numerator
	return *r
}

// Inverse returns 1/r, unreduced.
func Inverse[T constraints.Integer](r Rational[T]) Rational[T] {
	return r.Invert()
}

// Absolute replaces both fields of r by their absolute values and returns the
// result. It is the identity for unsigned T.
func (r *Rational[T]) Absolute() Rational[T] {
	r.Numerator = util.Abs(r.Numerator)
	r.Denominator = util.Abs(r.Denominator)
	return *r
}

// Absolute returns |r|.
func Absolute[T constraints.Integer](r Rational[T]) Rational[T] {
	return r.Absolute()
}

// IsZero reports whether r has a zero numerator and a nonzero denominator.
func (r Rational[T]) IsZero() bool {
	return r.Numerator == 0 && r.Denominator != 0
}

// Sign returns -1, 0 or +1 depending on the sign of r.
func (r Rational[T]) Sign() int {
	neg := (r.Numerator < 0) != (r.Denominator < 0)
	switch {
	case r.Numerator == 0:
		return 0
	case neg:
		return -1
	}
	return 1
}

// BigRat converts r to a new big.Rat. It panics if the denominator is zero.
func (r Rational[T]) BigRat() *big.Rat {
	return new(big.Rat).SetFrac(bigInt(r.Numerator), bigInt(r.Denominator))
}

func bigInt[T constraints.Integer](v T) *big.Int {
	if util.IsSigned[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

// String formats r as "n/d" without reducing it.
func (r Rational[T]) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}
