package optkit

import "fmt"

// UnwrapError is the panic value raised by the failing accessors of
// Option and Result (Unwrap, Expect, UnwrapErr, ExpectErr). It is the
// only condition this package raises itself, so a recover handler can
// detect a failed unwrap specifically, either by type assertion or
// with errors.As.
type UnwrapError struct {
	Op  string // accessor that failed, e.g. "Result.Unwrap"
	Msg string // human-readable description of the failure
	Err error  // failure payload of the source Result, when it was an error
}

// Error implements the error interface.
func (e *UnwrapError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Unwrap returns the wrapped failure payload, if any, making
// *UnwrapError transparent to errors.Is and errors.As chains.
func (e *UnwrapError) Unwrap() error {
	return e.Err
}

// unwrapEmpty builds the panic value for an unwrap on an empty variant.
func unwrapEmpty(op, msg string) *UnwrapError {
	tracer().Debugf("%s: %s", op, msg)
	return &UnwrapError{Op: op, Msg: msg}
}

// unwrapFailed builds the panic value for an unwrap on a failed Result,
// carrying the error payload's description.
func unwrapFailed(op, msg string, payload any) *UnwrapError {
	tracer().Debugf("%s: %s: %v", op, msg, payload)
	e := &UnwrapError{Op: op, Msg: fmt.Sprintf("%s: %v", msg, payload)}
	if err, ok := payload.(error); ok {
		e.Err = err
	}
	return e
}

// PanicError is the descriptor Try stores for a trapped panic value
// that is not itself an error. It is a comparable value type, so two
// panics with equivalent values produce equal descriptors.
type PanicError struct {
	Value string // formatted panic value
}

// Error implements the error interface.
func (e PanicError) Error() string {
	return "panic: " + e.Value
}
