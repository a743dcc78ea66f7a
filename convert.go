package optkit

// Bridges between Option and Result.

// OkOr converts an Option into a Result, mapping Some(v) to Ok(v) and
// None to Err(err).
func OkOr[E, T any](o Option[T], err E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[E](v)
	}
	return Err[T](err)
}

// OkOrElse converts an Option into a Result, mapping Some(v) to Ok(v)
// and None to Err of the payload produced by f.
func OkOrElse[E, T any](o Option[T], f func() E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[E](v)
	}
	return Err[T](f())
}

// Transpose turns an Option of a Result into a Result of an Option:
// None maps to Ok(None), Some(Ok(v)) to Ok(Some(v)), and Some(Err(e))
// to Err(e).
func Transpose[T, E any](o Option[Result[T, E]]) Result[Option[T], E] {
	r, ok := o.Get()
	if !ok {
		return Ok[E](None[T]())
	}
	if v, ok := r.Get(); ok {
		return Ok[E](Some(v))
	}
	return Err[Option[T]](r.err)
}

// TransposeResult turns a Result of an Option into an Option of a
// Result: Ok(None) maps to None, Ok(Some(v)) to Some(Ok(v)), and
// Err(e) to Some(Err(e)).
func TransposeResult[T, E any](r Result[Option[T], E]) Option[Result[T, E]] {
	o, ok := r.Get()
	if !ok {
		return Some(Err[T](r.err))
	}
	if v, ok := o.Get(); ok {
		return Some(Ok[E](v))
	}
	return None[Result[T, E]]()
}
