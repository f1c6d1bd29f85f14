package option

import "cmp"

// Map transforms the contained value. A nil mapping result is lifted with
// Of, i.e. degrades to None, keeping the no-nil invariant intact.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Of(f(o.value))
}

// Bind chains a computation that itself may come up empty.
func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.value)
}

// Filter keeps a present value only when pred holds for it.
func Filter[T any](o Option[T], pred func(T) bool) Option[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return None[T]()
}

// Fold threads a state value through the option: for Some the folder is
// applied once, for None the state is returned untouched.
func Fold[T, S any](o Option[T], state S, folder func(S, T) S) S {
	if o.ok {
		return folder(state, o.value)
	}
	return state
}

// Exists reports whether a value is present and pred holds for it.
func Exists[T any](o Option[T], pred func(T) bool) bool {
	return o.ok && pred(o.value)
}

// ForAll reports whether pred holds for the contained value; vacuously
// true for None.
func ForAll[T any](o Option[T], pred func(T) bool) bool {
	return !o.ok || pred(o.value)
}

// Equal reports whether two options are equal: both None, or both Some
// with equal inner values. Some versus None is always unequal. (For
// comparable T the == operator on Option values agrees with Equal, since
// constructors never store a value in a None.)
func Equal[T comparable](a, b Option[T]) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || a.value == b.value
}

// EqualFunc is Equal with a caller-supplied equality on the inner type.
func EqualFunc[T any](a, b Option[T], eq func(T, T) bool) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || eq(a.value, b.value)
}

// Compare orders two options: None sorts before Some, and two present
// values delegate to the inner type's ordering. The result follows the
// cmp convention of -1, 0 or +1.
func Compare[T cmp.Ordered](a, b Option[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied ordering on the inner type.
func CompareFunc[T any](a, b Option[T], compare func(T, T) int) int {
	switch {
	case a.ok && b.ok:
		return compare(a.value, b.value)
	case a.ok:
		return 1
	case b.ok:
		return -1
	}
	return 0
}
