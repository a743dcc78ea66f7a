package optkit

import "fmt"

// Option represents an optional value: either Some and containing a
// value, or None and containing nothing.
//
// The zero value of Option[T] is None. Option[T] is comparable when T
// is, and == implements structural equality: all None values of a type
// are equal, Some values compare by contained value.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option with a value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option contains a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// IsSomeAnd reports whether the option contains a value and that value
// satisfies pred.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.ok && pred(o.value)
}

// Get returns the value and a boolean indicating presence.
// This mirrors the common Go "(value, ok)" pattern.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Unwrap returns the contained value.
// It panics with *UnwrapError if the option is None; use Get or
// UnwrapOr when absence is an expected case.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic(unwrapEmpty("Option.Unwrap", "unwrap of None option"))
	}
	return o.value
}

// Expect returns the contained value, panicking with *UnwrapError and
// the given message if the option is None.
func (o Option[T]) Expect(msg string) T {
	if !o.ok {
		panic(unwrapEmpty("Option.Expect", msg))
	}
	return o.value
}

// UnwrapOr returns the contained value or a default.
func (o Option[T]) UnwrapOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the contained value or computes a default from f.
func (o Option[T]) UnwrapOrElse(f func() T) T {
	if o.ok {
		return o.value
	}
	return f()
}

// UnwrapOrZero returns the contained value or the zero value of T.
func (o Option[T]) UnwrapOrZero() T {
	// a None option never stores a payload, so value already is zero
	return o.value
}

// Or returns the option if it contains a value, otherwise rhs.
func (o Option[T]) Or(rhs Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return rhs
}

// OrElse returns the option if it contains a value, otherwise the
// option produced by f.
func (o Option[T]) OrElse(f func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return f()
}

// Xor returns whichever of o and rhs contains a value if exactly one of
// them does, otherwise None.
func (o Option[T]) Xor(rhs Option[T]) Option[T] {
	if o.ok == rhs.ok {
		return None[T]()
	}
	if o.ok {
		return o
	}
	return rhs
}

// Filter returns the option if it contains a value satisfying pred,
// otherwise None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return None[T]()
}

// Inspect calls f with the contained value, if any, and returns the
// option unchanged.
func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.ok {
		f(o.value)
	}
	return o
}

// Ptr returns a pointer to a copy of the contained value, or nil if the
// option is None. It is the inverse of FromPtr.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
