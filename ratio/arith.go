package ratio

// Comparisons reduce copies of both operands first, so 2/4 equals 1/2.

// Equal reports whether x and y denote the same number.
func (x Rational[T]) Equal(y Rational[T]) bool {
	x.Reduce()
	y.Reduce()
	return x.Numerator == y.Numerator && x.Denominator == y.Denominator
}

func (x Rational[T]) NotEqual(y Rational[T]) bool {
	return !x.Equal(y)
}

// Less reports whether x < y by comparing the cross products of the reduced
// operands.
func (x Rational[T]) Less(y Rational[T]) bool {
	x.Reduce()
	y.Reduce()
	return x.Numerator*y.Denominator < y.Numerator*x.Denominator
}

func (x Rational[T]) LessEqual(y Rational[T]) bool {
	return x.Less(y) || x.Equal(y)
}

func (x Rational[T]) Greater(y Rational[T]) bool {
	return y.Less(x)
}

func (x Rational[T]) GreaterEqual(y Rational[T]) bool {
	return x.Greater(y) || x.Equal(y)
}

// Cmp returns -1 if x < y, 0 if x == y and +1 if x > y.
func (x Rational[T]) Cmp(y Rational[T]) int {
	switch {
	case x.Less(y):
		return -1
	case x.Equal(y):
		return 0
	}
	return 1
}

// Arithmetic never modifies its operands and always returns a reduced result.

// Add returns x + y.
func (x Rational[T]) Add(y Rational[T]) Rational[T] {
	return New(x.Numerator*y.Denominator+y.Numerator*x.Denominator, x.Denominator*y.Denominator)
}

// Sub returns x - y, computed as x + (-y). It fails with ErrUnsupported when T
// is unsigned.
func (x Rational[T]) Sub(y Rational[T]) (Rational[T], error) {
	neg, err := Neg(y)
	if err != nil {
		return Rational[T]{}, err
	}
	return x.Add(neg), nil
}

// Mul returns x * y.
func (x Rational[T]) Mul(y Rational[T]) Rational[T] {
	return New(x.Numerator*y.Numerator, x.Denominator*y.Denominator)
}

// Div returns x / y, computed as x * (1/y). Dividing by zero is not checked:
// a nonzero x yields ±1/0 and a zero x panics while reducing 0/0.
func (x Rational[T]) Div(y Rational[T]) Rational[T] {
	return x.Mul(Inverse(y))
}
