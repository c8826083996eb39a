package perturb

import (
	"sort"
	"testing"

	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

// --- Factory tests ---

func TestNewByName(t *testing.T) {
	for _, name := range []string{RelocateName, TranslateAllName} {
		s, err := New(name, 1)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("strategy reports name %q, want %q", s.Name(), name)
		}
	}
}

func TestNewUnknownName(t *testing.T) {
	if _, err := New("Gaussian Raindrops", 1); err == nil {
		t.Error("unknown strategy name should fail")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != 2 {
		t.Fatalf("expected 2 built-in strategies, got %d", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("names should be sorted, got %v", names)
	}
}

// --- Movement radius tests ---

func TestMovementRadiusNoSegments(t *testing.T) {
	p := route.New(nil)
	p.AddPointZ(3, 3, 0)
	if got := movementRadius(p); got != 5.0 {
		t.Errorf("segment-less path radius = %v, want 5.0", got)
	}
}

func TestMovementRadiusQuarterMeanSegment(t *testing.T) {
	p := route.New(nil)
	p.AddPointZ(0, 0, 0)
	p.AddPointZ(40, 0, 0)
	p.AddPointZ(120, 0, 0)

	// Mean segment length 60, a quarter of it is 15.
	if got := movementRadius(p); !approxEqual(got, 15, tolerance) {
		t.Errorf("radius = %v, want 15", got)
	}
}

func TestMovementRadiusFloor(t *testing.T) {
	p := route.New(nil)
	p.AddPointZ(0, 0, 0)
	p.AddPointZ(1, 0, 0)
	p.AddPointZ(2, 0, 0)

	if got := movementRadius(p); got != 1.0 {
		t.Errorf("radius floors at 1.0, got %v", got)
	}
}
