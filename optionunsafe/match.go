package optionunsafe

import "github.com/plouh/language-ext/option"

// The relaxed variant has a single match family: there is no nil
// post-check to opt out of, so the Match/MatchUnsafe split of the strict
// variant collapses into one set of functions, named with the Unsafe
// suffix.

// MatchUnsafe eliminates u: exactly one of the branch functions runs, and
// its result — possibly nil — is returned. The some branch may receive a
// nil value.
func MatchUnsafe[T, R any](u OptionUnsafe[T], some func(T) R, none func() R) R {
	if u.ok {
		return some(u.value)
	}
	return none()
}

// MatchAsyncUnsafe lifts a wrapped producer's result through match. The
// none branch runs synchronously, before MatchAsyncUnsafe returns; the
// some branch runs when the returned future is awaited, after the
// producer completes. No branch result is nil-checked.
func MatchAsyncUnsafe[T, R any](u OptionUnsafe[option.Future[T]], some func(T) R, none func() R) option.Future[R] {
	if !u.ok {
		r := none()
		return func() R { return r }
	}
	produce := u.value
	return func() R {
		return some(produce())
	}
}

// MatchStreamUnsafe lifts a wrapped stream through match: every element of
// a present stream passes through the some branch; an absent stream
// yields a single none() element, computed synchronously. The result
// channel closes when the source closes.
func MatchStreamUnsafe[T, R any](u OptionUnsafe[<-chan T], some func(T) R, none func() R) <-chan R {
	out := make(chan R, 1)
	if !u.ok {
		out <- none()
		close(out)
		return out
	}
	src := u.value
	go func() {
		defer close(out)
		for v := range src {
			out <- some(v)
		}
	}()
	return out
}
