package ratio

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v4"
	"github.com/vmihailenco/msgpack/v4/codes"
	"golang.org/x/exp/constraints"

	"github.com/tsiemens/ratio/util"
)

var (
	ErrSyntax = errors.New("invalid rational number syntax")
	ErrRange  = errors.New("value out of range")
)

// Parse reads "n/d" or "n" (meaning n/1) in base 10. The result is not
// reduced, so Parse(r.String()) reproduces r exactly. Zero denominators are
// accepted.
func Parse[T constraints.Integer](s string) (Rational[T], error) {
	num, den, found := strings.Cut(strings.TrimSpace(s), "/")
	n, err := parseInt[T](num)
	if err != nil {
		return Rational[T]{}, fmt.Errorf("parsing numerator of %q: %w", s, err)
	}
	if !found {
		return Rational[T]{Numerator: n, Denominator: 1}, nil
	}
	d, err := parseInt[T](den)
	if err != nil {
		return Rational[T]{}, fmt.Errorf("parsing denominator of %q: %w", s, err)
	}
	return Rational[T]{Numerator: n, Denominator: d}, nil
}

func parseInt[T constraints.Integer](s string) (T, error) {
	s = strings.TrimSpace(s)
	if util.IsSigned[T]() {
		v, err := strconv.ParseInt(s, 10, util.BitSize[T]())
		return T(v), numError(err)
	}
	v, err := strconv.ParseUint(s, 10, util.BitSize[T]())
	return T(v), numError(err)
}

func numError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, strconv.ErrRange):
		return ErrRange
	}
	return ErrSyntax
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (r Rational[T]) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The value is stored as
// written, without reduction.
func (r *Rational[T]) UnmarshalText(text []byte) error {
	v, err := Parse[T](string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

var (
	_ msgpack.CustomEncoder = Rational[int]{}
	_ msgpack.CustomDecoder = (*Rational[int])(nil)
)

// EncodeMsgpack writes r as the array [numerator, denominator].
func (r Rational[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	for _, v := range []T{r.Numerator, r.Denominator} {
		var err error
		if util.IsSigned[T]() {
			err = enc.EncodeInt(int64(v))
		} else {
			err = enc.EncodeUint(uint64(v))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack reads the form written by EncodeMsgpack, failing with
// ErrRange if either field does not fit in T.
func (r *Rational[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	l, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if l != 2 {
		return fmt.Errorf("decoding rational: array of %d elements: %w", l, ErrSyntax)
	}
	var fields [2]T
	for i := range fields {
		if fields[i], err = decodeField[T](dec); err != nil {
			return err
		}
	}
	r.Numerator, r.Denominator = fields[0], fields[1]
	return nil
}

// isSignedIntCode reports whether c is a negative fixnum or one of the
// signed int encodings.
func isSignedIntCode(c codes.Code) bool {
	return c >= codes.NegFixedNumLow || (c >= codes.Int8 && c <= codes.Int64)
}

// decodeField reads one integer, checking the wire type first since the
// decoder converts between signed and unsigned without complaint.
func decodeField[T constraints.Integer](dec *msgpack.Decoder) (T, error) {
	c, err := dec.PeekCode()
	if err != nil {
		return 0, err
	}
	if util.IsSigned[T]() {
		if c == codes.Uint64 {
			v, err := dec.DecodeUint64()
			if err != nil {
				return 0, err
			}
			if v > math.MaxInt64 {
				return 0, fmt.Errorf("decoding rational: %d: %w", v, ErrRange)
			}
			return checkedSigned[T](int64(v))
		}
		v, err := dec.DecodeInt64()
		if err != nil {
			return 0, err
		}
		return checkedSigned[T](v)
	}
	if isSignedIntCode(c) {
		v, err := dec.DecodeInt64()
		if err != nil {
			return 0, err
		}
		if v < 0 {
			return 0, fmt.Errorf("decoding rational: %d: %w", v, ErrRange)
		}
		return checkedUnsigned[T](uint64(v))
	}
	v, err := dec.DecodeUint64()
	if err != nil {
		return 0, err
	}
	return checkedUnsigned[T](v)
}

func checkedSigned[T constraints.Integer](v int64) (T, error) {
	if int64(T(v)) != v {
		return 0, fmt.Errorf("decoding rational: %d: %w", v, ErrRange)
	}
	return T(v), nil
}

func checkedUnsigned[T constraints.Integer](v uint64) (T, error) {
	if uint64(T(v)) != v {
		return 0, fmt.Errorf("decoding rational: %d: %w", v, ErrRange)
	}
	return T(v), nil
}
