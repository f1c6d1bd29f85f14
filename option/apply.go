package option

// Applicative application: a wrapped function meets wrapped arguments.
// The result is present only when the function and all arguments are.

// Apply applies a wrapped one-argument function to a wrapped argument.
func Apply[A, B any](f Option[func(A) B], a Option[A]) Option[B] {
	if !f.ok || !a.ok {
		return None[B]()
	}
	return Of(f.value(a.value))
}

// Apply2 applies a wrapped two-argument function to two wrapped arguments.
func Apply2[A, B, C any](f Option[func(A, B) C], a Option[A], b Option[B]) Option[C] {
	if !f.ok || !a.ok || !b.ok {
		return None[C]()
	}
	return Of(f.value(a.value, b.value))
}

// ApplyPartial supplies the first of two arguments, yielding a wrapped
// one-argument function awaiting the second.
func ApplyPartial[A, B, C any](f Option[func(A, B) C], a Option[A]) Option[func(B) C] {
	if !f.ok || !a.ok {
		return None[func(B) C]()
	}
	fn, first := f.value, a.value
	return Some(func(b B) C { return fn(first, b) })
}
