package ordered_test

import (
	"cmp"
	"math/rand/v2"
	"testing"

	"github.com/npillmayer/ordered"
)

func TestConfigureDefaults(t *testing.T) {
	conf := ordered.Configure()
	if conf.Rand == nil {
		t.Fatal("expected default configuration to carry a random source")
	}
	if conf.Keep != ordered.DefaultKeep {
		t.Errorf("expected default keep to be %d, is %d", ordered.DefaultKeep, conf.Keep)
	}
}

func TestConfigureOptions(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	conf := ordered.Configure(ordered.WithRand(r), ordered.KeepNodes(-5))
	if conf.Rand != r {
		t.Error("expected option to install random source")
	}
	if conf.Keep != 0 {
		t.Errorf("expected negative keep to be clamped to 0, is %d", conf.Keep)
	}
}

func TestMaxLevel(t *testing.T) {
	if conf := ordered.Configure(); conf.MaxLevel != 0 {
		t.Errorf("expected default max level to be unset, is %d", conf.MaxLevel)
	}
	if conf := ordered.Configure(ordered.WithMaxLevel(0)); conf.MaxLevel != 1 {
		t.Errorf("expected max level to be at least 1, is %d", conf.MaxLevel)
	}
}

func TestSeedIsReproducible(t *testing.T) {
	a := ordered.Configure(ordered.WithSeed(42)).Rand
	b := ordered.Configure(ordered.WithSeed(42)).Rand
	for i := 0; i < 10; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("expected equal seeds to produce equal streams, got %d ≠ %d", x, y)
		}
	}
}

func TestReverseAndLess(t *testing.T) {
	rev := ordered.Reverse(cmp.Compare[int])
	if rev(1, 2) <= 0 {
		t.Error("expected reversed comparison to order 2 before 1")
	}
	less := ordered.Less(cmp.Compare[string])
	if !less("a", "b") || less("b", "a") || less("a", "a") {
		t.Error("expected Less to implement a strict order")
	}
}
