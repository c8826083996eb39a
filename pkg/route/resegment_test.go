package route

import "testing"

// --- Resegmenting tests ---

func TestResegmentReturnsNilWhenNotGrowing(t *testing.T) {
	p := New(nil)
	for i := 0; i < 4; i++ {
		p.AddPointZ(float64(i), 0, 0)
	}

	if Resegment(p, 4) != nil {
		t.Error("target equal to current count should return nil")
	}
	if Resegment(p, 2) != nil {
		t.Error("target below current count should return nil")
	}
}

func TestResegmentNoSegments(t *testing.T) {
	p := New(nil)
	if Resegment(p, 5) != nil {
		t.Error("empty path should return nil")
	}
	p.AddPointZ(0, 0, 0)
	if Resegment(p, 5) != nil {
		t.Error("single-point path should return nil")
	}
}

func TestResegmentExactCount(t *testing.T) {
	p := New(nil)
	for _, x := range []float64{0, 10, 11, 30} {
		p.AddPointZ(x, 0, 0)
	}

	for target := 5; target <= 23; target++ {
		out := Resegment(p, target)
		if out == nil {
			t.Fatalf("target %d: expected a resegmented path", target)
		}
		if out.Len() != target {
			t.Errorf("target %d: got %d points", target, out.Len())
		}
	}
}

func TestResegmentProportionalAllocation(t *testing.T) {
	p := New(nil)
	p.AddPointZ(0, 0, 0)
	p.AddPointZ(90, 0, 0)
	p.AddPointZ(100, 0, 0)

	out := Resegment(p, 13)
	if out == nil || out.Len() != 13 {
		t.Fatalf("expected 13 points, got %v", out)
	}

	// 10 added points split 9:1 by segment length, evenly spaced inside
	// each segment.
	want := []float64{0, 9, 18, 27, 36, 45, 54, 63, 72, 81, 90, 95, 100}
	for i, x := range want {
		if !approxEqual(out.Points[i].X, x, tolerance) {
			t.Errorf("point %d: expected x=%v, got %v", i, x, out.Points[i].X)
		}
	}
}

func TestResegmentInterpolatesEvenly(t *testing.T) {
	p := New(nil)
	p.AddPointZ(0, 0, 0)
	p.AddPointZ(10, 20, 30)

	out := Resegment(p, 5)
	if out == nil || out.Len() != 5 {
		t.Fatalf("expected 5 points, got %v", out)
	}
	for i := 0; i < 5; i++ {
		f := float64(i) / 4
		pt := out.Points[i]
		if !approxEqual(pt.X, 10*f, tolerance) ||
			!approxEqual(pt.Y, 20*f, tolerance) ||
			!approxEqual(pt.Z, 30*f, tolerance) {
			t.Errorf("point %d: expected t=%v along the segment, got %+v", i, f, pt)
		}
	}
}

func TestResegmentPreservesOriginals(t *testing.T) {
	p := New(nil)
	for _, x := range []float64{0, 7.25, 19.5, 31} {
		p.AddPointZ(x, x/2, x*3)
	}

	out := Resegment(p, 11)
	if out == nil {
		t.Fatal("expected a resegmented path")
	}

	// Every original point appears unchanged and in order.
	next := 0
	for _, pt := range out.Points {
		if next < p.Len() && pt == p.Points[next] {
			next++
		}
	}
	if next != p.Len() {
		t.Errorf("only %d of %d original points survived in order", next, p.Len())
	}
}

func TestResegmentEqualSegments(t *testing.T) {
	p := New(nil)
	for i := 0; i < 5; i++ {
		p.AddPointZ(float64(i), 0, 0)
	}

	// Four equal segments sharing two added points: rounding ties must
	// still land on the exact target.
	out := Resegment(p, 7)
	if out == nil || out.Len() != 7 {
		t.Fatalf("expected exactly 7 points, got %v", out)
	}
	for i := 1; i < out.Len(); i++ {
		if out.Points[i].X < out.Points[i-1].X {
			t.Errorf("points must stay ordered along the path, broke at %d", i)
		}
	}
}

func TestResegmentKeepsLockAndSource(t *testing.T) {
	p := New(rampGrid(40, 4))
	p.Locked = true
	p.AddPointZ(0, 0, 0)
	p.AddPointZ(30, 0, 30)

	out := Resegment(p, 4)
	if out == nil {
		t.Fatal("expected a resegmented path")
	}
	if !out.Locked {
		t.Error("locked state must carry over")
	}
	if err := out.UpdateAllZ(); err != nil {
		t.Errorf("resegmented path should share the elevation source: %v", err)
	}
}

func TestResegmentCoincidentPoints(t *testing.T) {
	p := New(nil)
	p.AddPointZ(3, 3, 3)
	p.AddPointZ(3, 3, 3)
	p.AddPointZ(3, 3, 3)

	// Zero total length cannot split proportionally; the count must still
	// be exact.
	out := Resegment(p, 6)
	if out == nil || out.Len() != 6 {
		t.Fatalf("expected 6 points, got %v", out)
	}
	for i, pt := range out.Points {
		if !approxEqual(pt.X, 3, tolerance) || !approxEqual(pt.Z, 3, tolerance) {
			t.Errorf("point %d: interpolation of coincident points must stay put, got %+v", i, pt)
		}
	}
}
