package optionunsafe

import "github.com/plouh/language-ext/internal/arith"

// Arithmetic over relaxed options shares the strict variant's core: the
// same category dispatch and the same absent-handling policies (None as
// identity of Append/Subtract, None as absorbing element of
// Multiply/Divide). The one difference sits at the nil boundary: a
// present result stays present even when it is nil.

// Append combines two relaxed options; None is the identity.
func Append[T any](l, r OptionUnsafe[T]) OptionUnsafe[T] {
	v, ok := arith.Append(l.value, l.ok, r.value, r.ok)
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Subtract removes the right option from the left; a None left side lifts
// to the type's zero where one exists, a None right side is the identity.
func Subtract[T any](l, r OptionUnsafe[T]) OptionUnsafe[T] {
	v, ok := arith.Subtract(l.value, l.ok, r.value, r.ok)
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Multiply multiplies two relaxed options; either side None absorbs.
func Multiply[T any](l, r OptionUnsafe[T]) OptionUnsafe[T] {
	v, ok := arith.Multiply(l.value, l.ok, r.value, r.ok)
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Divide divides the left option by the right; either side None absorbs.
func Divide[T any](l, r OptionUnsafe[T]) OptionUnsafe[T] {
	v, ok := arith.Divide(l.value, l.ok, r.value, r.ok)
	if !ok {
		return None[T]()
	}
	return Some(v)
}
