package either

import "testing"

func TestConstructorsAndAccessors(t *testing.T) {
	r := Right[string](5)
	if !r.IsRight() || r.IsLeft() {
		t.Error("expected Right(5) to report the right arm")
	}
	if v, ok := r.Right(); !ok || v != 5 {
		t.Errorf("expected Right accessor to return 5, got %v (ok=%v)", v, ok)
	}
	if _, ok := r.Left(); ok {
		t.Error("expected Left accessor of a Right to report absence")
	}

	l := Left[string, int]("oops")
	if !l.IsLeft() || l.IsRight() {
		t.Error("expected Left(oops) to report the left arm")
	}
	if v, ok := l.Left(); !ok || v != "oops" {
		t.Errorf("expected Left accessor to return oops, got %v (ok=%v)", v, ok)
	}
}

func TestZeroValueIsLeft(t *testing.T) {
	var e Either[string, int]
	if !e.IsLeft() {
		t.Error("expected the zero value to be Left")
	}
}

func TestMatch(t *testing.T) {
	r := Match(Right[string](5),
		func(l string) string { return "left" },
		func(v int) string { return "right" })
	if r != "right" {
		t.Errorf("expected the right branch to run, got %q", r)
	}
	r = Match(Left[string, int]("oops"),
		func(l string) string { return l },
		func(v int) string { return "right" })
	if r != "oops" {
		t.Errorf("expected the left branch to receive the value, got %q", r)
	}
}

func TestMaps(t *testing.T) {
	e := MapRight(Right[string](5), func(v int) int { return v * 2 })
	if v, _ := e.Right(); v != 10 {
		t.Errorf("expected MapRight to transform the right value, got %v", v)
	}
	e = MapRight(Left[string, int]("oops"), func(v int) int { return v * 2 })
	if !e.IsLeft() {
		t.Error("expected MapRight to pass a Left through")
	}
	f := MapLeft(Left[string, int]("oops"), func(l string) int { return len(l) })
	if v, _ := f.Left(); v != 4 {
		t.Errorf("expected MapLeft to transform the left value, got %v", v)
	}
}

func TestSwap(t *testing.T) {
	e := Right[string](5).Swap()
	if v, ok := e.Left(); !ok || v != 5 {
		t.Errorf("expected Swap to move the value to the left arm, got %v (ok=%v)", v, ok)
	}
}

func TestStringer(t *testing.T) {
	if s := Right[string](5).String(); s != "Right(5)" {
		t.Errorf("unexpected string form %q", s)
	}
	if s := Left[string, int]("oops").String(); s != "Left(oops)" {
		t.Errorf("unexpected string form %q", s)
	}
}
