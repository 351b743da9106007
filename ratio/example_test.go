package ratio_test

import (
	"fmt"

	"github.com/tsiemens/ratio/ratio"
)

func ExampleNew() {
	fmt.Println(ratio.New(6, -8))
	fmt.Println(ratio.Make(6, -8, false))
	// Output:
	// -3/4
	// 6/-8
}

func ExampleRational_Reduce() {
	r := ratio.Make(2, 2, false)
	fmt.Println(r)
	fmt.Println(r.Reduce())
	fmt.Println(r)
	// Output:
	// 2/2
	// 1/1
	// 1/1
}

func ExampleRational_Add() {
	a, b := ratio.New(1, 2), ratio.New(1, 3)
	fmt.Println(a.Add(b), a.Mul(b), a.Div(b))
	d, _ := a.Sub(b)
	fmt.Println(d)
	// Output:
	// 5/6 1/6 3/2
	// 1/6
}

func ExampleRational_Negate() {
	s := ratio.FromInt[int32](1)
	fmt.Println(s.Negate())

	u := ratio.FromInt[uint32](1)
	_, err := u.Negate()
	fmt.Println(err)
	// Output:
	// -1/1 <nil>
	// cannot negate 1/1 with element type uint32: unsupported operation
}

func ExampleRational_Round() {
	for _, r := range []ratio.Rational[int]{ratio.New(5, 2), ratio.New(-5, 2)} {
		fmt.Println(r, r.Floor(), r.Ceil(), r.Truncate(), r.Round())
	}
	// Output:
	// 5/2 2 3 2 3
	// -5/2 -3 -2 -2 -3
}

func ExampleFloat64() {
	fmt.Println(ratio.Float64(ratio.New(1, 2)))
	fmt.Println(ratio.Float64(ratio.Make(1, 0, false)))
	// Output:
	// 0.5
	// +Inf
}
