/*
Package either implements a two-armed disjoint union.

An Either[L, R] holds exactly one of two values: a "left" L, conventionally
a default or an error description, or a "right" R, conventionally the
useful result. The option packages convert to and from Either by supplying
a left value (or a lazy producer of one) for the absent case.
*/
package either

import "fmt"

// Either holds exactly one of an L or an R. The zero value is Left with
// the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left constructs an Either holding a left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right constructs an Either holding a right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// IsLeft reports whether e holds a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether e holds a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value and a flag telling whether e holds one.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and a flag telling whether e holds one.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Swap exchanges the arms of e.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// String implements fmt.Stringer.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Match eliminates e: exactly one of the branch functions runs, receiving
// the arm's value, and its result is returned.
func Match[L, R, A any](e Either[L, R], left func(L) A, right func(R) A) A {
	if e.isRight {
		return right(e.right)
	}
	return left(e.left)
}

// MapRight transforms the right value, passing a left value through.
func MapRight[L, R, S any](e Either[L, R], f func(R) S) Either[L, S] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, S](e.left)
}

// MapLeft transforms the left value, passing a right value through.
func MapLeft[L, M, R any](e Either[L, R], f func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M](e.right)
	}
	return Left[M, R](f(e.left))
}
