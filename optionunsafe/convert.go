package optionunsafe

import "github.com/plouh/language-ext/either"

// ToEither converts to the disjoint union: Some becomes Right with the
// contained value — nil included —, None becomes Left carrying left.
func ToEither[L, T any](u OptionUnsafe[T], left L) either.Either[L, T] {
	if u.ok {
		return either.Right[L](u.value)
	}
	return either.Left[L, T](left)
}

// ToEitherGet is the lazy form of ToEither: leftFn runs only when u is
// actually None.
func ToEitherGet[L, T any](u OptionUnsafe[T], leftFn func() L) either.Either[L, T] {
	if u.ok {
		return either.Right[L](u.value)
	}
	return either.Left[L, T](leftFn())
}

// FromEither keeps a Right value — nil included — and drops a Left.
func FromEither[L, T any](e either.Either[L, T]) OptionUnsafe[T] {
	if r, ok := e.Right(); ok {
		return Some(r)
	}
	return None[T]()
}

// Apply applies a wrapped one-argument function to a wrapped argument; the
// result is present only when both are.
func Apply[A, B any](f OptionUnsafe[func(A) B], a OptionUnsafe[A]) OptionUnsafe[B] {
	if !f.ok || !a.ok {
		return None[B]()
	}
	return Some(f.value(a.value))
}

// Apply2 applies a wrapped two-argument function to two wrapped arguments.
func Apply2[A, B, C any](f OptionUnsafe[func(A, B) C], a OptionUnsafe[A], b OptionUnsafe[B]) OptionUnsafe[C] {
	if !f.ok || !a.ok || !b.ok {
		return None[C]()
	}
	return Some(f.value(a.value, b.value))
}

// ApplyPartial supplies the first of two arguments, yielding a wrapped
// one-argument function awaiting the second.
func ApplyPartial[A, B, C any](f OptionUnsafe[func(A, B) C], a OptionUnsafe[A]) OptionUnsafe[func(B) C] {
	if !f.ok || !a.ok {
		return None[func(B) C]()
	}
	fn, first := f.value, a.value
	return Some(func(b B) C { return fn(first, b) })
}
