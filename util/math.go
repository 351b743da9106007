package util

import (
	"golang.org/x/exp/constraints"
)

func MinValue[T constraints.Ordered](val0 T, vals ...T) T {
	min := val0
	for _, v := range vals {
		if v < min {
			min = v
		}
	}
	return min
}

func MaxValue[T constraints.Ordered](val0 T, vals ...T) T {
	max := val0
	for _, v := range vals {
		if v > max {
			max = v
		}
	}
	return max
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}

// BitSize returns the width of T in bits.
func BitSize[T constraints.Integer]() int {
	n := 0
	for x := T(1); x != 0; x <<= 1 {
		n++
	}
	return n
}

// Abs returns |x|. For unsigned T this is the identity. The most negative
// value of a signed T has no positive counterpart and is returned unchanged.
func Abs[T constraints.Integer](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// GCD is the Euclidean greatest common divisor of |m| and |n|.
// GCD(0, n) == |n|, GCD(m, 0) == |m| and GCD(0, 0) == 0.
func GCD[T constraints.Integer](m, n T) T {
	m, n = Abs(m), Abs(n)
	for n != 0 {
		m, n = n, m%n
	}
	return m
}
