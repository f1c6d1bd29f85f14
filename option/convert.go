package option

import "github.com/plouh/language-ext/either"

// ToEither converts to the disjoint union: Some becomes Right with the
// contained value, None becomes Left carrying left.
func ToEither[L, T any](o Option[T], left L) either.Either[L, T] {
	if o.ok {
		return either.Right[L](o.value)
	}
	return either.Left[L, T](left)
}

// ToEitherGet is the lazy form of ToEither: leftFn runs only when o is
// actually None.
func ToEitherGet[L, T any](o Option[T], leftFn func() L) either.Either[L, T] {
	if o.ok {
		return either.Right[L](o.value)
	}
	return either.Left[L, T](leftFn())
}

// FromEither keeps a Right value (lifted with Of) and drops a Left.
func FromEither[L, T any](e either.Either[L, T]) Option[T] {
	if r, ok := e.Right(); ok {
		return Of(r)
	}
	return None[T]()
}
