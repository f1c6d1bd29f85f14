package option

import "github.com/plouh/language-ext/internal/arith"

// Arithmetic over options. The strategy for combining two present values
// is resolved from T once per operation: numeric, then text, then
// sequence, then set/map, then a capability method on T itself (see the
// langext interfaces). A type matching no category panics with
// langext.UndefinedOperationError.
//
// The absent-handling policies differ between the operation pairs, on
// purpose: None is the identity of Append and Subtract but the absorbing
// element of Multiply and Divide.

// Append combines two options. None is the identity: with both sides None
// the result is None, with exactly one side None the present side is
// returned unchanged. Present values combine per category — numbers sum,
// strings and slices concatenate, maps merge with the right side winning
// on key collisions, capability types combine themselves.
func Append[T any](l, r Option[T]) Option[T] {
	v, ok := arith.Append(l.value, l.ok, r.value, r.ok)
	if !ok {
		return None[T]()
	}
	return Of(v)
}

// Subtract removes the right option from the left. A None left side is
// first lifted to the type's additive identity, if it has one; if the
// type has none, the left side is returned unchanged. A None right side
// acts as the identity and leaves the left side unchanged. Present values
// subtract per category — numbers take the difference, slices drop the
// right side's elements, maps drop the right side's keys.
func Subtract[T any](l, r Option[T]) Option[T] {
	v, ok := arith.Subtract(l.value, l.ok, r.value, r.ok)
	if !ok {
		return None[T]()
	}
	return Of(v)
}

// Multiply multiplies two options. Either side None absorbs: the result is
// None. Present values multiply per category — numbers multiply, slices
// produce the cross-combination of all element pairs.
func Multiply[T any](l, r Option[T]) Option[T] {
	v, ok := arith.Multiply(l.value, l.ok, r.value, r.ok)
	if !ok {
		return None[T]()
	}
	return Of(v)
}

// Divide divides the left option by the right, with the same absorbing
// None policy as Multiply. Division by a numeric zero follows Go
// semantics for the kind: integer kinds panic, float kinds yield Inf or
// NaN.
func Divide[T any](l, r Option[T]) Option[T] {
	v, ok := arith.Divide(l.value, l.ok, r.value, r.ok)
	if !ok {
		return None[T]()
	}
	return Of(v)
}
