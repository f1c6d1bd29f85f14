/*
Package option implements Option[T], a strict optional-value container.

An Option is in exactly one of two states: Some, carrying a value, or
None, carrying nothing. The strict variant maintains the invariant that a
carried value is never nil. The explicit constructor Some panics when
handed a nil value; the implicit lift Of forgives and maps nil to None
instead. This asymmetry is deliberate: Of is the boundary where sloppy
nil-based code enters option-land, Some is a claim by the caller that a
value exists.

Consumption goes through the match family (Match, MatchUnsafe, MatchAsync,
MatchStream) or through convenience accessors built on the same
elimination. Reading the inner value of a None outside of these panics
with langext.EmptyOptionError.

For a container that tolerates present nil values, see the optionunsafe
sister package.
*/
package option

import (
	"fmt"
	"iter"

	"github.com/npillmayer/schuko/tracing"
	langext "github.com/plouh/language-ext"
	"github.com/plouh/language-ext/internal/arith"
)

// tracer writes to trace with key 'langext.option'
func tracer() tracing.Trace {
	return tracing.Select("langext.option")
}

// Option is a strict optional value: either Some with a non-nil value, or
// None. The zero value is None. Options are immutable; every operation
// returns a new one.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs a present Option. The value must not be nil for a
// nilable T; a nil argument panics with langext.NullValueError. Use Of
// for the forgiving lift that maps nil to None.
func Some[T any](v T) Option[T] {
	if arith.IsNil(v) {
		tracer().Errorf("option.Some called with nil value")
		panic(langext.NullValueError{Where: "option.Some"})
	}
	return Option[T]{value: v, ok: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of lifts a raw value into an Option: a nil value of a nilable T becomes
// None, everything else Some.
func Of[T any](v T) Option[T] {
	if arith.IsNil(v) {
		return Option[T]{}
	}
	return Option[T]{value: v, ok: true}
}

// FromPtr lifts a pointer: nil becomes None, otherwise the pointee is
// lifted with Of.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Option[T]{}
	}
	return Of(*p)
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Unwrap returns the inner value and a presence flag, in the common Go
// "(value, ok)" manner.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.ok
}

// MustGet returns the inner value, panicking with langext.EmptyOptionError
// when the option is empty. Useful in tests and after a presence check.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic(langext.EmptyOptionError{Op: "option.MustGet"})
	}
	return o.value
}

// Or returns o if a value is present, otherwise other. Chaining Or scans
// left to right and keeps the first present option.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return other
}

// OrElse returns the inner value, or def when the option is empty.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// OrElseGet returns the inner value, or the result of f. f runs only when
// the option is empty.
func (o Option[T]) OrElseGet(f func() T) T {
	if o.ok {
		return o.value
	}
	return f()
}

// IfSome calls f with the inner value when present; a no-op on None.
func (o Option[T]) IfSome(f func(T)) {
	if o.ok {
		f(o.value)
	}
}

// IfNone calls f when the option is empty; a no-op on Some.
func (o Option[T]) IfNone(f func()) {
	if !o.ok {
		f()
	}
}

// ToSlice returns a slice holding the inner value, or an empty slice.
func (o Option[T]) ToSlice() []T {
	if o.ok {
		return []T{o.value}
	}
	return []T{}
}

// Values returns an iterator over the at most one contained value.
func (o Option[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.ok {
			yield(o.value)
		}
	}
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
