/*
Package langext provides algebraic container types for optional values.

The interesting part of an optional type is not the struct with a boolean in
it — everybody writes that one in an afternoon — but the discipline around
it. This module keeps two twin containers apart:

▪︎ option.Option[T] is the strict variant. A present value is guaranteed to
be non-nil; constructing a present option from nil fails loudly, and all
consumption goes through a match-style elimination that refuses to hand nil
back to the caller.

▪︎ optionunsafe.OptionUnsafe[T] is the relaxed variant. It tolerates a
present nil value and says so in the names of its extraction methods. It is
a distinct type, not a mode, so the compiler keeps strict and relaxed call
paths from mixing silently.

Both variants share one arithmetic core: append, subtract, multiply and
divide dispatch on the semantic category of the contained type (numeric,
text, ordered sequence, set/map, or a user-supplied capability — see the
interfaces in this package). The either package supplies the two-armed
disjoint union both variants convert to and from.

This package itself holds only what the subpackages share: the error
taxonomy and the arithmetic capability interfaces.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © the language-ext authors
*/
package langext

// Addable is implemented by types that can combine two of their values.
// Option arithmetic consults it for append after all structural categories
// (numeric, text, sequence, set/map) have failed to match.
type Addable[T any] interface {
	Append(other T) T
}

// Subtractable is implemented by types that can remove one value from
// another, in whatever sense suits the type.
type Subtractable[T any] interface {
	Subtract(other T) T
}

// Multiplicable is implemented by types that can multiply two of their
// values.
type Multiplicable[T any] interface {
	Multiply(other T) T
}

// Divisible is implemented by types that can divide one value by another.
type Divisible[T any] interface {
	Divide(other T) T
}
