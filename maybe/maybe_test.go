package maybe_test

import (
	"testing"

	. "github.com/npillmayer/ordered/maybe"
)

func TestMatch(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Error("expected Just(7) to match Just")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Errorf("expected Nothing not to match Just, got %d", w)
	case m.Nothing():
		w = -1
	}
	if w != -1 {
		t.Errorf("expected w to be -1, is %#v", w)
	}
}

func TestZeroValueIsNothing(t *testing.T) {
	var z Maybe[string]
	if !z.IsNothing() {
		t.Error("expected zero value to be Nothing")
	}
	if z.String() != "Nothing" {
		t.Errorf("expected Nothing, got %s", z)
	}
	if Just("a").String() != "Just(a)" {
		t.Errorf("expected Just(a), got %s", Just("a"))
	}
}

func TestGetAndOf(t *testing.T) {
	if v, ok := Just(3).Get(); !ok || v != 3 {
		t.Errorf("expected (3, true), got (%d, %v)", v, ok)
	}
	if _, ok := Nothing[int]().Get(); ok {
		t.Error("expected Nothing to have no value")
	}
	if Of(5, false) != Nothing[int]() {
		t.Error("expected Of(…, false) to be Nothing")
	}
	if Of(5, true) != Just(5) {
		t.Error("expected Of(5, true) to be Just(5)")
	}
}

func TestWithDefault(t *testing.T) {
	if xx := Just(7).WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, has %d", xx)
	}
	if yy := Nothing[int]().WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
}

func TestMapAndThen(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v := Just(7).Map(double).WithDefault(0); v != 14 {
		t.Errorf("expected Just(7).Map(…) to return 14, got %d", v)
	}
	if !Nothing[int]().Map(double).IsNothing() {
		t.Error("expected Nothing.Map(…) to be Nothing")
	}

	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if !AndThen(gt0, Just(7)).WithDefault(false) {
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if !AndThen(gt0, Just(-1)).IsNothing() {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing")
	}
	if !AndThen(gt0, Nothing[int]()).IsNothing() {
		t.Error("expected Nothing |> andThen(gt0) to be Nothing")
	}
}
