package optkit

// MapOk transforms the success value by f, leaving a failure unchanged.
func MapOk[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Ok[E](f(r.value))
	}
	return Err[U](r.err)
}

// MapErr transforms the failure payload by f, leaving a success
// unchanged.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return Err[T](f(r.err))
}

// MapOrResult applies f to the success value, or returns def for a
// failure.
func MapOrResult[T, E, U any](r Result[T, E], def U, f func(T) U) U {
	if r.ok {
		return f(r.value)
	}
	return def
}

// MapOrElseResult applies f to the success value, or computes the
// fallback from the failure payload.
func MapOrElseResult[T, E, U any](r Result[T, E], def func(E) U, f func(T) U) U {
	if r.ok {
		return f(r.value)
	}
	return def(r.err)
}

// AndResult returns rhs if r is a success, otherwise r's failure.
// rhs is eagerly evaluated; use AndThenResult for a lazily produced
// result.
func AndResult[T, E, U any](r Result[T, E], rhs Result[U, E]) Result[U, E] {
	if r.ok {
		return rhs
	}
	return Err[U](r.err)
}

// AndThenResult calls f with the success value and returns its result,
// propagating a failure unchanged.
func AndThenResult[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return Err[U](r.err)
}

// OrResult returns r's success, otherwise rhs.
// rhs is eagerly evaluated; use OrElseResult for a lazily produced
// result.
func OrResult[T, E, F any](r Result[T, E], rhs Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return rhs
}

// OrElseResult calls f with the failure payload and returns its result,
// propagating a success unchanged.
func OrElseResult[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[F](r.value)
	}
	return f(r.err)
}

// FilterResult returns r if it is a success whose value satisfies
// pred; a success failing the predicate becomes a failure carrying
// that same value, so payload and error types coincide. A failure
// passes through unchanged.
func FilterResult[T any](r Result[T, T], pred func(T) bool) Result[T, T] {
	if r.ok && !pred(r.value) {
		return Err[T](r.value)
	}
	return r
}

// FlattenResult removes one level of nesting from a Result of a Result.
func FlattenResult[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if inner, ok := r.Get(); ok {
		return inner
	}
	return Err[T](r.err)
}

// ContainsOk reports whether the result is a success with exactly v.
func ContainsOk[T comparable, E any](r Result[T, E], v T) bool {
	return r.ok && r.value == v
}

// ContainsErr reports whether the result is a failure with exactly e.
func ContainsErr[T any, E comparable](r Result[T, E], e E) bool {
	return !r.ok && r.err == e
}
