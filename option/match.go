package option

import (
	langext "github.com/plouh/language-ext"
	"github.com/plouh/language-ext/internal/arith"
)

// The match family lives in package-level functions because Go methods
// cannot introduce a result type parameter.

// Match eliminates o: exactly one of the branch functions runs, and its
// result is returned. A branch returning a nil result of a nilable R
// panics with langext.NullResultError, so combinators built on Match
// cannot quietly reintroduce nil into strict code paths. Use MatchUnsafe
// when interoperating with nil-permitting code.
func Match[T, R any](o Option[T], some func(T) R, none func() R) R {
	if o.ok {
		return checkBranch(some(o.value), "some")
	}
	return checkBranch(none(), "none")
}

// MatchUnsafe eliminates o like Match, without the nil post-check on the
// branch results. An escape hatch for call sites that need to produce nil.
func MatchUnsafe[T, R any](o Option[T], some func(T) R, none func() R) R {
	if o.ok {
		return some(o.value)
	}
	return none()
}

// Future is a blocking producer of a single value, the awaited primitive
// of MatchAsync. Failure or cancellation of the underlying computation is
// the producer's own concern and propagates as its panic.
type Future[T any] func() T

// MatchAsync lifts a wrapped producer's result through match. The none
// branch runs synchronously, before MatchAsync returns; the some branch
// runs when the returned future is awaited, after the producer completes.
// Branch results get the same nil post-check as Match.
func MatchAsync[T, R any](o Option[Future[T]], some func(T) R, none func() R) Future[R] {
	if !o.ok {
		r := checkBranch(none(), "none")
		return func() R { return r }
	}
	produce := o.value
	return func() R {
		return checkBranch(some(produce()), "some")
	}
}

// MatchStream lifts a wrapped stream through match: every element received
// from a present stream is passed through the some branch; an absent
// stream yields a single none() element, computed synchronously before
// MatchStream returns. The result channel closes when the source closes
// (or right after the none element).
func MatchStream[T, R any](o Option[<-chan T], some func(T) R, none func() R) <-chan R {
	out := make(chan R, 1)
	if !o.ok {
		out <- checkBranch(none(), "none")
		close(out)
		return out
	}
	src := o.value
	go func() {
		defer close(out)
		for v := range src {
			out <- checkBranch(some(v), "some")
		}
	}()
	return out
}

func checkBranch[R any](r R, branch string) R {
	if arith.IsNil(r) {
		panic(langext.NullResultError{Branch: branch})
	}
	return r
}
