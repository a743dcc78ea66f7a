package optkit

import "fmt"

// Result represents the outcome of a fallible computation: either Ok
// and carrying a success value of type T, or Err and carrying a
// failure payload of type E.
//
// E is deliberately unconstrained. Err stores arbitrary payloads
// verbatim; only the Try boundary performs descriptor extraction.
// Result[T, E] is comparable when both T and E are, and == implements
// structural equality on variant and payload.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok constructs a success Result. The error type parameter comes
// first, so it can be named while T is inferred from the argument:
//
//	r := optkit.Ok[error](42) // Result[int, error]
func Ok[E, T any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err constructs a failure Result, with the value type parameter
// first:
//
//	r := optkit.Err[int](io.EOF) // Result[int, error]
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk reports whether the result is a success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the result is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsOkAnd reports whether the result is a success whose value satisfies
// pred.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsErrAnd reports whether the result is a failure whose payload
// satisfies pred.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.err)
}

// Get returns the success value and a boolean indicating success.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// Ok returns the success value as an Option: Some for a success, None
// for a failure.
func (r Result[T, E]) Ok() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// Err returns the failure payload as an Option: Some for a failure,
// None for a success.
func (r Result[T, E]) Err() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.err)
}

// Unwrap returns the success value.
// It panics with *UnwrapError, carrying the failure payload's
// description, if the result is a failure.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(unwrapFailed("Result.Unwrap", "unwrap of err result", r.err))
	}
	return r.value
}

// Expect returns the success value, panicking with *UnwrapError and
// the given message if the result is a failure.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(unwrapFailed("Result.Expect", msg, r.err))
	}
	return r.value
}

// UnwrapErr returns the failure payload, panicking with *UnwrapError
// if the result is a success.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(unwrapEmpty("Result.UnwrapErr", fmt.Sprintf("unwrap of ok result: %v", r.value)))
	}
	return r.err
}

// ExpectErr returns the failure payload, panicking with *UnwrapError
// and the given message if the result is a success.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(unwrapEmpty("Result.ExpectErr", msg))
	}
	return r.err
}

// UnwrapOr returns the success value or a default.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value or computes one from the
// failure payload.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.ok {
		return r.value
	}
	return f(r.err)
}

// Inspect calls f with the success value, if any, and returns the
// result unchanged.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectErr calls f with the failure payload, if any, and returns the
// result unchanged.
func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

// String implements fmt.Stringer.
func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
