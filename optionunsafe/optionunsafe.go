/*
Package optionunsafe implements OptionUnsafe[T], the nil-tolerant twin of
option.Option.

An OptionUnsafe may carry a present nil value: Some(nil) is legal,
distinguishable from None, and unequal to it. The extraction methods carry
an Unsafe suffix so that call sites visibly flag "this path tolerates
nil". The two variants are distinct types rather than modes of one type —
handing a relaxed result to code expecting the strict variant is a compile
error, not a runtime surprise.

Relax and Tighten convert between the twins. Tighten is lossy: a present
nil cannot be represented strictly and becomes None.
*/
package optionunsafe

import (
	"fmt"
	"iter"

	"github.com/npillmayer/schuko/tracing"
	langext "github.com/plouh/language-ext"
	"github.com/plouh/language-ext/internal/arith"
	"github.com/plouh/language-ext/option"
)

// tracer writes to trace with key 'langext.optionunsafe'
func tracer() tracing.Trace {
	return tracing.Select("langext.optionunsafe")
}

// OptionUnsafe is a relaxed optional value: either Some, whose value may
// be nil, or None. The zero value is None. Values are immutable.
type OptionUnsafe[T any] struct {
	value T
	ok    bool
}

// Some constructs a present OptionUnsafe. Unlike the strict variant, a
// nil value is accepted and preserved.
func Some[T any](v T) OptionUnsafe[T] {
	return OptionUnsafe[T]{value: v, ok: true}
}

// None constructs an empty OptionUnsafe.
func None[T any]() OptionUnsafe[T] {
	return OptionUnsafe[T]{}
}

// Relax widens a strict option into the nil-tolerant twin. Never lossy.
func Relax[T any](o option.Option[T]) OptionUnsafe[T] {
	if v, ok := o.Unwrap(); ok {
		return Some(v)
	}
	return None[T]()
}

// Tighten narrows back into the strict variant. Lossy at the nil
// boundary: a present nil tightens to None, since the strict variant
// cannot represent it.
func Tighten[T any](u OptionUnsafe[T]) option.Option[T] {
	if !u.ok {
		return option.None[T]()
	}
	if arith.IsNil(u.value) {
		tracer().Debugf("tightening a present nil to None")
	}
	return option.Of(u.value)
}

// IsSome reports whether a value — possibly nil — is present.
func (u OptionUnsafe[T]) IsSome() bool {
	return u.ok
}

// IsNone reports whether the option is empty.
func (u OptionUnsafe[T]) IsNone() bool {
	return !u.ok
}

// Unwrap returns the inner value and a presence flag. The value may be
// nil even when the flag is true.
func (u OptionUnsafe[T]) Unwrap() (T, bool) {
	return u.value, u.ok
}

// MustGetUnsafe returns the inner value, panicking with
// langext.EmptyOptionError when the option is empty. The returned value
// may be nil.
func (u OptionUnsafe[T]) MustGetUnsafe() T {
	if !u.ok {
		panic(langext.EmptyOptionError{Op: "optionunsafe.MustGetUnsafe"})
	}
	return u.value
}

// Or returns u if a value is present, otherwise other. A present nil
// counts as present, so Some(nil) wins over a following Some(v).
func (u OptionUnsafe[T]) Or(other OptionUnsafe[T]) OptionUnsafe[T] {
	if u.ok {
		return u
	}
	return other
}

// OrElseUnsafe returns the inner value, or def when the option is empty.
func (u OptionUnsafe[T]) OrElseUnsafe(def T) T {
	if u.ok {
		return u.value
	}
	return def
}

// OrElseGetUnsafe returns the inner value, or the result of f. f runs
// only when the option is empty.
func (u OptionUnsafe[T]) OrElseGetUnsafe(f func() T) T {
	if u.ok {
		return u.value
	}
	return f()
}

// IfSomeUnsafe calls f with the inner value — possibly nil — when
// present.
func (u OptionUnsafe[T]) IfSomeUnsafe(f func(T)) {
	if u.ok {
		f(u.value)
	}
}

// IfNoneUnsafe calls f when the option is empty.
func (u OptionUnsafe[T]) IfNoneUnsafe(f func()) {
	if !u.ok {
		f()
	}
}

// ToSlice returns a slice holding the inner value, or an empty slice.
func (u OptionUnsafe[T]) ToSlice() []T {
	if u.ok {
		return []T{u.value}
	}
	return []T{}
}

// Values returns an iterator over the at most one contained value.
func (u OptionUnsafe[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.ok {
			yield(u.value)
		}
	}
}

// String implements fmt.Stringer.
func (u OptionUnsafe[T]) String() string {
	if u.ok {
		return fmt.Sprintf("Some(%v)", u.value)
	}
	return "None"
}

// Map transforms the contained value. Unlike the strict variant, a nil
// mapping result stays present.
func Map[T, U any](u OptionUnsafe[T], f func(T) U) OptionUnsafe[U] {
	if !u.ok {
		return None[U]()
	}
	return Some(f(u.value))
}

// Bind chains a computation that itself may come up empty.
func Bind[T, U any](u OptionUnsafe[T], f func(T) OptionUnsafe[U]) OptionUnsafe[U] {
	if !u.ok {
		return None[U]()
	}
	return f(u.value)
}

// Filter keeps a present value only when pred holds for it.
func Filter[T any](u OptionUnsafe[T], pred func(T) bool) OptionUnsafe[T] {
	if u.ok && pred(u.value) {
		return u
	}
	return None[T]()
}

// Fold threads a state value through the option.
func Fold[T, S any](u OptionUnsafe[T], state S, folder func(S, T) S) S {
	if u.ok {
		return folder(state, u.value)
	}
	return state
}

// Exists reports whether a value is present and pred holds for it.
func Exists[T any](u OptionUnsafe[T], pred func(T) bool) bool {
	return u.ok && pred(u.value)
}

// ForAll reports whether pred holds for the contained value; vacuously
// true for None.
func ForAll[T any](u OptionUnsafe[T], pred func(T) bool) bool {
	return !u.ok || pred(u.value)
}

// Equal reports whether two relaxed options are equal: both None, or both
// Some with equal inner values. Two present nil values are equal; a
// present nil versus None is not.
func Equal[T comparable](a, b OptionUnsafe[T]) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || a.value == b.value
}

// EqualFunc is Equal with a caller-supplied equality on the inner type.
func EqualFunc[T any](a, b OptionUnsafe[T], eq func(T, T) bool) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || eq(a.value, b.value)
}

// CompareFunc orders two relaxed options: None sorts before Some, and two
// present values delegate to the supplied ordering, which must be
// prepared to see nil values.
func CompareFunc[T any](a, b OptionUnsafe[T], compare func(T, T) int) int {
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
