package option

import (
	"fmt"
)

// MaybeOption tells set values from unset ones when matching.
type MaybeOption int

const (
	None MaybeOption = iota
	Some
)

func (mo MaybeOption) String() string {
	if mo == Some {
		return "Some"
	}
	return "None"
}

// Maybe is a type for optional values of type T.
// The zero value is unset.
type Maybe[T any] struct {
	value T
	set   bool
}

// Something creates an optional value with an initial value of x.
func Something[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, set: true}
}

// Nothing creates an optional value without a value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsNone returns true if o is unset.
func (o Maybe[T]) IsNone() bool {
	return !o.set
}

// Option returns Some or None, depending on o being set.
func (o Maybe[T]) Option() MaybeOption {
	if o.set {
		return Some
	}
	return None
}

// Unwrap returns the value of o, or the zero value of T if o is unset.
func (o Maybe[T]) Unwrap() T {
	return o.value
}

// Get returns the value of o and a flag telling if it has been set.
func (o Maybe[T]) Get() (T, bool) {
	return o.value, o.set
}

// OrElse returns the value of o if set, x otherwise.
func (o Maybe[T]) OrElse(x T) T {
	if o.set {
		return o.value
	}
	return x
}

// Match calls none if o is unset, some with o's value otherwise.
// Either function may be nil.
//
//	title.Match(
//		func() { … },         // no title
//		func(t string) { … }, // title t
//	)
func (o Maybe[T]) Match(none func(), some func(T)) {
	switch {
	case o.set && some != nil:
		some(o.value)
	case !o.set && none != nil:
		none()
	}
}

func (o Maybe[T]) String() string {
	if !o.set {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
