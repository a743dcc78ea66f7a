package optkit

// Transformations that change the payload type live here as
// package-level functions, since Go methods cannot introduce type
// parameters of their own.

// Pair groups the two values combined by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// FromPtr converts Go's native nullable idiom, a possibly-nil pointer,
// into an Option: nil maps to None, anything else to Some of the
// pointed-to value. Total, never fails.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Map transforms the contained value by f if present, leaving None
// unchanged.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}

// MapOr applies f to the contained value, or returns def if the option
// is None.
func MapOr[T, U any](o Option[T], def U, f func(T) U) U {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return def
}

// MapOrElse applies f to the contained value, or evaluates def if the
// option is None.
func MapOrElse[T, U any](o Option[T], def func() U, f func(T) U) U {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return def()
}

// And returns rhs if o contains a value, otherwise None.
func And[T, U any](o Option[T], rhs Option[U]) Option[U] {
	if o.IsSome() {
		return rhs
	}
	return None[U]()
}

// AndThen calls f with the contained value and returns its result, or
// None if o is empty. Some call this flat-map.
func AndThen[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return None[U]()
}

// Zip combines two options into one containing both values, or None if
// either input is empty.
func Zip[T, U any](a Option[T], b Option[U]) Option[Pair[T, U]] {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok && bok {
		return Some(Pair[T, U]{First: av, Second: bv})
	}
	return None[Pair[T, U]]()
}

// ZipWith combines two options through f, or returns None if either
// input is empty.
func ZipWith[T, U, V any](a Option[T], b Option[U], f func(T, U) V) Option[V] {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok && bok {
		return Some(f(av, bv))
	}
	return None[V]()
}

// Flatten removes one level of nesting from an Option of an Option.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if inner, ok := o.Get(); ok {
		return inner
	}
	return None[T]()
}

// Contains reports whether the option contains exactly v.
func Contains[T comparable](o Option[T], v T) bool {
	return o.ok && o.value == v
}
