// Package option provides Option, an explicit present/absent value.
//
// Option is used where a result may legitimately be missing and callers must
// handle both branches, for example the acknowledgment event of a placed order
// or the optional lines of an address.
package option

import "fmt"

// Option holds either a value (Some) or nothing (None).
// The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and true for Some, the zero value and false for None.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// OrElse returns the held value, or fallback for None.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// ToSlice returns a one-element slice for Some and an empty slice for None.
func (o Option[T]) ToSlice() []T {
	if o.ok {
		return []T{o.value}
	}
	return []T{}
}

func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies f to the value of o, if any.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}
