package optionunsafe

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/plouh/language-ext/option"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type UnsafeTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestOptionUnsafeFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "langext.optionunsafe")
	defer teardown()
	suite.Run(t, new(UnsafeTestEnviron))
}

// --- Tests -----------------------------------------------------------------

func (env *UnsafeTestEnviron) TestPresentNilIsLegal() {
	u := Some[*int](nil)
	env.True(u.IsSome(), "expected Some(nil) to be present")
	v, ok := u.Unwrap()
	env.True(ok, "expected Unwrap to report presence")
	env.Nil(v, "expected the present value to be nil")
}

func (env *UnsafeTestEnviron) TestPresentNilIsNotNone() {
	env.False(Equal(Some[*int](nil), None[*int]()),
		"expected Some(nil) and None to be distinct states")
	env.True(Equal(Some[*int](nil), Some[*int](nil)),
		"expected two present nils to be equal")
}

func (env *UnsafeTestEnviron) TestMatchUnsafe() {
	r := MatchUnsafe(Some[*int](nil),
		func(v *int) string {
			env.Nil(v, "expected the some branch to receive the nil value")
			return "some"
		},
		func() string { return "none" })
	env.Equal("some", r, "expected the some branch to run for a present nil")
}

func (env *UnsafeTestEnviron) TestExtractionNeverNilChecks() {
	// branch results may be nil without any panic
	r := MatchUnsafe(Some(5),
		func(v int) *int { return nil },
		func() *int { return nil })
	env.Nil(r, "expected the nil branch result to pass through")
}

func (env *UnsafeTestEnviron) TestOrFirstPresentWins() {
	// a present nil counts as present
	u := Some[*int](nil).Or(Some(new(int)))
	v, _ := u.Unwrap()
	env.Nil(v, "expected Some(nil) to win the Or chain")

	x := 7
	w := None[*int]().Or(Some(&x))
	env.Equal(&x, w.MustGetUnsafe(), "expected the first present option to win")
}

func (env *UnsafeTestEnviron) TestRelaxTighten() {
	o := option.Some(5)
	u := Relax(o)
	env.True(u.IsSome(), "expected relaxing a present option to stay present")
	env.Equal(5, u.MustGetUnsafe(), "expected the value to survive relaxing")

	back := Tighten(u)
	env.Equal(5, back.MustGet(), "expected tightening to recover the value")

	// the lossy edge: a present nil cannot be represented strictly
	env.True(Tighten(Some[*int](nil)).IsNone(),
		"expected a present nil to tighten to None")
	env.True(Tighten(None[int]()).IsNone(), "expected None to tighten to None")
}

func (env *UnsafeTestEnviron) TestMapKeepsNilPresent() {
	u := Map(Some(5), func(x int) *int { return nil })
	env.True(u.IsSome(), "expected a nil mapping result to stay present")
	v, _ := u.Unwrap()
	env.Nil(v, "expected the mapped value to be nil")
}

func (env *UnsafeTestEnviron) TestCombinators() {
	env.Equal(5, Bind(Some(4), func(x int) OptionUnsafe[int] {
		return Some(x + 1)
	}).MustGetUnsafe(), "expected bind to chain")
	env.True(Filter(Some(5), func(x int) bool { return x > 9 }).IsNone(),
		"expected the filtered value to drop out")
	env.Equal(15, Fold(Some(5), 10, func(acc, x int) int { return acc + x }),
		"expected fold to apply the folder once")
	env.True(Exists(Some(5), func(x int) bool { return x > 3 }))
	env.True(ForAll(None[int](), func(x int) bool { return false }),
		"expected ForAll to hold vacuously for None")
}

func (env *UnsafeTestEnviron) TestArithmeticSharesCore() {
	env.Equal(5, Append(Some(2), Some(3)).MustGetUnsafe(),
		"expected numeric append through the shared dispatch")
	env.Equal(5, Append(None[int](), Some(5)).MustGetUnsafe(),
		"expected None to be the append identity")
	env.True(Multiply(Some(5), None[int]()).IsNone(),
		"expected None to absorb in multiplication")
	env.Equal(-3, Subtract(None[int](), Some(3)).MustGetUnsafe(),
		"expected the zero lift in subtraction")
}

func (env *UnsafeTestEnviron) TestApplicative() {
	double := func(x int) int { return x * 2 }
	env.Equal(10, Apply(Some(double), Some(5)).MustGetUnsafe(),
		"expected apply to run the wrapped function")
	env.True(Apply(None[func(int) int](), Some(5)).IsNone(),
		"expected an absent function to make the result None")
	add := func(x, y int) int { return x + y }
	partial := ApplyPartial(Some(add), Some(2))
	env.Equal(5, Apply(partial, Some(3)).MustGetUnsafe(),
		"expected the partial application to await the second argument")
}

func (env *UnsafeTestEnviron) TestEitherConversion() {
	e := ToEither(Some[*int](nil), "empty")
	r, ok := e.Right()
	env.True(ok, "expected a present nil to convert to Right")
	env.Nil(r, "expected the Right value to be nil")

	u := FromEither(ToEither(None[*int](), "empty"))
	env.True(u.IsNone(), "expected the absent round trip to stay None")
}

func (env *UnsafeTestEnviron) TestMatchAsyncUnsafe() {
	fut := MatchAsyncUnsafe(Some(option.Future[int](func() int { return 21 })),
		func(v int) int { return v * 2 },
		func() int { return -1 })
	env.Equal(42, fut(), "expected the some branch to run on the awaited result")

	ran := false
	resolved := MatchAsyncUnsafe(None[option.Future[int]](),
		func(v int) int { return v },
		func() int { ran = true; return -1 })
	env.True(ran, "expected the none branch to run synchronously")
	env.Equal(-1, resolved())
}

func (env *UnsafeTestEnviron) TestMatchStreamUnsafe() {
	src := make(chan int, 2)
	src <- 1
	src <- 2
	close(src)
	out := MatchStreamUnsafe(Some[<-chan int](src),
		func(v int) int { return v * 10 },
		func() int { return -1 })
	var collected []int
	for v := range out {
		collected = append(collected, v)
	}
	env.Equal([]int{10, 20}, collected, "expected the stream mapped through the some branch")
}
