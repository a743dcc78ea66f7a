package optkit

import "fmt"

// From converts Go's native fallible idiom, a producer of a (value,
// error) pair, into a Result: a nil error maps to Ok, anything else to
// Err.
func From[T any](f func() (T, error)) Result[T, error] {
	v, err := f()
	if err != nil {
		return Err[T](err)
	}
	return Ok[error](v)
}

// Try evaluates f and captures its outcome as a Result. A panic raised
// anywhere below f is trapped at this boundary and never re-propagates:
// the recovered value becomes the Err payload, kept as-is when it
// already is an error, otherwise wrapped in a PanicError descriptor.
//
// Runtime failure kinds are stable under this conversion, so two calls
// failing the same way yield equal Results:
//
//	a := optkit.Try(func() int { return 1 / zero })
//	b := optkit.Try(func() int { return 2 / zero })
//	// a == b: both hold the integer-divide-by-zero runtime error
func Try[T any](f func() T) (r Result[T, error]) {
	defer func() {
		if v := recover(); v != nil {
			err := descriptor(v)
			tracer().Errorf("Try trapped a panic: %v", err)
			r = Err[T](err)
		}
	}()
	return Ok[error](f())
}

// descriptor normalizes a recovered panic value into a stable,
// comparable error.
func descriptor(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return PanicError{Value: fmt.Sprint(v)}
}
