package ratio

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"

	"github.com/tsiemens/ratio/util"
)

type ri = Rational[int]

func TestMakeUnreduced(t *testing.T) {
	a := Make(2, 2, false)
	require.Equal(t, 2, a.Numerator)
	require.Equal(t, 2, a.Denominator)

	require.Equal(t, ri{1, 1}, a.Reduce())
	require.Equal(t, ri{1, 1}, a)
}

func TestNew(t *testing.T) {
	require.Equal(t, ri{1, 1}, New(2, 2))
	require.Equal(t, ri{3, 4}, New(6, 8))
	require.Equal(t, ri{-3, 4}, New(6, -8))
	require.Equal(t, ri{3, 4}, New(-6, -8))
	require.Equal(t, ri{2, 1}, FromInt(2))
	require.True(t, FromInt(2).Equal(Make(2, 1, false)))
}

func TestReduceMember(t *testing.T) {
	a := Make(2, 2, false)
	require.Equal(t, ri{1, 1}, a.Reduce())
	require.Equal(t, ri{1, 1}, a)
}

func TestReduceFunc(t *testing.T) {
	for _, tc := range []struct {
		in, exp ri
	}{
		{ri{1, -1}, ri{-1, 1}},
		{ri{0, 2}, ri{0, 1}},
		{ri{0, -7}, ri{0, 1}},
		{ri{2, 0}, ri{1, 0}},
		{ri{-2, 0}, ri{-1, 0}},
		{ri{-4, -6}, ri{2, 3}},
		{ri{12, 18}, ri{2, 3}},
		{ri{5, 7}, ri{5, 7}},
	} {
		t.Run(tc.in.String(), func(t *testing.T) {
			in := tc.in
			require.Equal(t, tc.exp, Reduce(in))
			// the caller's copy is untouched
			require.Equal(t, tc.in, in)
		})
	}
}

func TestReduceZeroOverZeroPanics(t *testing.T) {
	a := Make(0, 0, false)
	require.Panics(t, func() { a.Reduce() })
	require.Panics(t, func() { New(0, 0) })
}

func checkReduced[T constraints.Integer](t *testing.T, n, d T) {
	t.Helper()
	r := New(n, d)
	g := util.GCD(r.Numerator, r.Denominator)
	require.Equal(t, T(1), g, "%v from %d/%d is not in lowest terms", r, n, d)
	require.False(t, r.Denominator < 0, "%v has a negative denominator", r)
	require.Equal(t, r, Reduce(r), "reducing %v is not idempotent", r)
	require.True(t, r.Equal(Make(n, d, false)))
}

func TestReduceProperties(t *testing.T) {
	for n := -12; n <= 12; n++ {
		for d := -12; d <= 12; d++ {
			if d == 0 {
				continue
			}
			checkReduced(t, int16(n), int16(d))
			checkReduced(t, int32(n), int32(d))
			checkReduced(t, int64(n), int64(d))
			checkReduced(t, int(n), int(d))
			checkReduced(t, int8(n), int8(d))
			if n >= 0 && d > 0 {
				checkReduced(t, uint16(n), uint16(d))
				checkReduced(t, uint32(n), uint32(d))
				checkReduced(t, uint64(n), uint64(d))
				checkReduced(t, uint(n), uint(d))
				checkReduced(t, uint8(n), uint8(d))
			}
		}
	}
}

func TestNegate(t *testing.T) {
	a := FromInt(1)
	n, err := a.Negate()
	require.NoError(t, err)
	require.Equal(t, ri{-1, 1}, n)
	require.Equal(t, ri{-1, 1}, a)

	b := New(3, 4)
	n, err = Neg(b)
	require.NoError(t, err)
	require.Equal(t, ri{-3, 4}, n)
	require.Equal(t, ri{3, 4}, b)
}

func checkNegateUnsupported[T constraints.Integer](t *testing.T) {
	t.Helper()
	a := FromInt[T](1)
	got, err := a.Negate()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnsupported), "%v", err)
	require.Equal(t, a, got)
	require.Equal(t, Rational[T]{1, 1}, a)

	_, err = Neg(a)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestNegateUnsigned(t *testing.T) {
	checkNegateUnsupported[uint8](t)
	checkNegateUnsupported[uint16](t)
	checkNegateUnsupported[uint32](t)
	checkNegateUnsupported[uint64](t)
	checkNegateUnsupported[uint](t)

	_, err := Neg(FromInt[uint32](1))
	require.EqualError(t, err, "cannot negate 1/1 with element type uint32: unsupported operation")
}

func TestInvert(t *testing.T) {
	a := New(1, 2)
	require.Equal(t, ri{2, 1}, a.Invert())
	require.Equal(t, ri{2, 1}, a)

	b := New(1, 2)
	require.Equal(t, ri{2, 1}, Inverse(b))
	require.Equal(t, ri{1, 2}, b)

	// inversion does not reduce or fix the sign
	require.Equal(t, ri{-2, 4}, Inverse(Make(4, -2, false)))
	require.Equal(t, ri{1, 0}, Inverse(FromInt(0)))
}

func TestAbsolute(t *testing.T) {
	a := Make(-2, -4, false)
	require.Equal(t, ri{2, 4}, a.Absolute())
	require.Equal(t, ri{2, 4}, a)

	b := New(-3, 5)
	require.Equal(t, ri{3, 5}, Absolute(b))
	require.Equal(t, ri{-3, 5}, b)

	require.Equal(t, ri{3, 5}, Absolute(Make(3, -5, false)))

	u := New[uint16](6, 4)
	require.Equal(t, Rational[uint16]{3, 2}, Absolute(u))
}

func TestSignAndIsZero(t *testing.T) {
	assert.Equal(t, 0, New(0, 3).Sign())
	assert.Equal(t, 1, New(2, 3).Sign())
	assert.Equal(t, -1, New(-2, 3).Sign())
	assert.Equal(t, -1, Make(2, -3, false).Sign())
	assert.Equal(t, 1, Make(-2, -3, false).Sign())
	assert.Equal(t, 1, New[uint8](2, 3).Sign())

	assert.True(t, New(0, 3).IsZero())
	assert.False(t, Make(0, 0, false).IsZero())
	assert.False(t, New(1, 3).IsZero())
}

func TestBigRat(t *testing.T) {
	require.Equal(t, 0, big.NewRat(-3, 4).Cmp(New(6, -8).BigRat()))
	u := New[uint64](math.MaxUint64, 2)
	exp := new(big.Rat).SetFrac(new(big.Int).SetUint64(math.MaxUint64), big.NewInt(2))
	require.Equal(t, 0, exp.Cmp(u.BigRat()))
	require.Panics(t, func() { Make(1, 0, false).BigRat() })
}

func TestString(t *testing.T) {
	require.Equal(t, "3/4", New(3, 4).String())
	require.Equal(t, "2/4", Make(2, 4, false).String())
	require.Equal(t, "-3/4", New(3, -4).String())
	require.Equal(t, "1/0", Make(1, 0, false).String())
	require.Equal(t, "65535/2", Make[uint16](65535, 2, false).String())
	require.Equal(t, "-128/1", fmt.Sprint(FromInt[int8](-128)))
}
