package option

import "testing"

func TestToEither(t *testing.T) {
	e := ToEither(Some(5), "empty")
	if r, ok := e.Right(); !ok || r != 5 {
		t.Errorf("expected a present option to become Right(5), got %v", e)
	}
	e = ToEither(None[int](), "empty")
	if l, ok := e.Left(); !ok || l != "empty" {
		t.Errorf("expected an absent option to become Left(empty), got %v", e)
	}
}

func TestToEitherGetIsLazy(t *testing.T) {
	called := false
	ToEitherGet(Some(5), func() string { called = true; return "empty" })
	if called {
		t.Error("expected the left producer not to run for a present option")
	}
	e := ToEitherGet(None[int](), func() string { called = true; return "empty" })
	if !called {
		t.Error("expected the left producer to run for an absent option")
	}
	if l, _ := e.Left(); l != "empty" {
		t.Errorf("expected the produced left value, got %q", l)
	}
}

func TestEitherRoundTrip(t *testing.T) {
	o := FromEither(ToEither(Some(5), "empty"))
	if !Equal(o, Some(5)) {
		t.Errorf("expected the round trip to recover Some(5), got %v", o)
	}
	o = FromEither(ToEither(None[int](), "empty"))
	if !o.IsNone() {
		t.Errorf("expected the round trip of None to stay None, got %v", o)
	}
}

func TestAbsentDefaultRecovery(t *testing.T) {
	// the supplied default lands in the left arm; swapping the arms
	// recovers it as a present option
	e := ToEither(None[int](), 9)
	if o := FromEither(e.Swap()); !Equal(o, Some(9)) {
		t.Errorf("expected the default to come back as Some(9), got %v", o)
	}
}
