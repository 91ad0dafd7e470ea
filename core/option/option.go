package option

import (
	"errors"
	"fmt"
)

// ErrCannotUnwrapNone is returned when trying to unwrap an unset value.
var ErrCannotUnwrapNone = errors.New("cannot unwrap unset value")

// T is a type for optional values of type V.
// The zero value of T is None.
type T[V comparable] struct {
	value V
	set   bool
}

// Some creates an optional value with an initial value of x.
func Some[V comparable](x V) T[V] {
	return T[V]{value: x, set: true}
}

// None creates an optional value without a value.
func None[V comparable]() T[V] {
	return T[V]{}
}

// IsNone returns true if o is unset.
func (o T[V]) IsNone() bool {
	return !o.set
}

// Get returns the value of o and a flag indicating if it is set.
func (o T[V]) Get() (V, bool) {
	return o.value, o.set
}

// Unwrap returns the value of o. If o is unset, Unwrap returns the zero
// value of V and ErrCannotUnwrapNone.
func (o T[V]) Unwrap() (V, error) {
	if !o.set {
		return o.value, ErrCannotUnwrapNone
	}
	return o.value, nil
}

// UnwrapOr returns the value of o, or dflt if o is unset.
func (o T[V]) UnwrapOr(dflt V) V {
	if !o.set {
		return dflt
	}
	return o.value
}

// Equals is true if o and other are both unset or both set to the same value.
func (o T[V]) Equals(other T[V]) bool {
	if o.set != other.set {
		return false
	}
	return !o.set || o.value == other.value
}

// Matches treats o as a pattern: an unset o matches every x, a set o
// matches only its own value.
func (o T[V]) Matches(x V) bool {
	return !o.set || o.value == x
}

func (o T[V]) String() string {
	if !o.set {
		return "None"
	}
	return fmt.Sprintf("%v", o.value)
}
