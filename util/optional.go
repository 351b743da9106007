package util

import "fmt"

type Optional[T any] struct {
	val     T
	present bool
}

func NewOptional[T any](v T) Optional[T] {
	return Optional[T]{val: v, present: true}
}

func (o *Optional[T]) Set(v T) {
	o.val = v
	o.present = true
}

func (o *Optional[T]) Clear() {
	var zero T
	o.val = zero
	o.present = false
}

func (o Optional[T]) Present() bool {
	return o.present
}

func (o Optional[T]) MustGet() T {
	if !o.present {
		panic(fmt.Sprintf("Optional[%T] is not set", o.val))
	}
	return o.val
}

func (o Optional[T]) GetOr(def T) T {
	if o.present {
		return o.val
	}
	return def
}
