package geo

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// --- Point3 tests ---

func TestPointDistance(t *testing.T) {
	a := Pt(0, 0, 0)
	b := Pt(3, 4, 0)
	if !approxEqual(a.Distance(b), 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", a.Distance(b))
	}
	c := Pt(1, 2, 2)
	if !approxEqual(a.Distance(c), 3.0, tolerance) {
		t.Errorf("expected distance 3.0, got %f", a.Distance(c))
	}
}

func TestPointPlanarDistance(t *testing.T) {
	a := Pt(0, 0, 100)
	b := Pt(3, 4, -250)
	if !approxEqual(a.PlanarDistance(b), 5.0, tolerance) {
		t.Errorf("expected planar distance 5.0, got %f", a.PlanarDistance(b))
	}
}

func TestPointAddSubScale(t *testing.T) {
	a := Pt(1, 2, 3)
	b := Pt(4, 5, 6)
	sum := a.Add(b)
	if sum != Pt(5, 7, 9) {
		t.Errorf("expected (5,7,9), got %v", sum)
	}
	diff := b.Sub(a)
	if diff != Pt(3, 3, 3) {
		t.Errorf("expected (3,3,3), got %v", diff)
	}
	sc := a.Scale(2)
	if sc != Pt(2, 4, 6) {
		t.Errorf("expected (2,4,6), got %v", sc)
	}
}

func TestPointNormalize(t *testing.T) {
	p := Pt(3, 4, 0)
	n := p.Normalize()
	if !approxEqual(n.Length(), 1.0, tolerance) {
		t.Errorf("expected unit length, got %f", n.Length())
	}
	if !approxEqual(n.X, 0.6, tolerance) || !approxEqual(n.Y, 0.8, tolerance) {
		t.Errorf("expected (0.6,0.8,0), got %v", n)
	}
	zero := Point3{}.Normalize()
	if zero != (Point3{}) {
		t.Errorf("expected zero vector to normalize to zero, got %v", zero)
	}
}

func TestPointDot(t *testing.T) {
	a := Pt(1, 0, 0)
	b := Pt(0, 1, 0)
	if !approxEqual(a.Dot(b), 0, tolerance) {
		t.Errorf("expected orthogonal dot 0, got %f", a.Dot(b))
	}
	if !approxEqual(a.Dot(a), 1, tolerance) {
		t.Errorf("expected self dot 1, got %f", a.Dot(a))
	}
}

func TestPointCross(t *testing.T) {
	x := Pt(1, 0, 0)
	y := Pt(0, 1, 0)
	c := x.Cross(y)
	if !approxEqual(c.X, 0, tolerance) || !approxEqual(c.Y, 0, tolerance) || !approxEqual(c.Z, 1, tolerance) {
		t.Errorf("expected x cross y = z, got %v", c)
	}
	// Parallel vectors have zero cross product.
	p := Pt(2, 4, 6)
	q := Pt(1, 2, 3)
	if !approxEqual(p.Cross(q).Length(), 0, tolerance) {
		t.Errorf("expected parallel cross length 0, got %f", p.Cross(q).Length())
	}
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0, 0)
	b := Pt(10, 10, 4)
	mid := a.Lerp(b, 0.5)
	if !approxEqual(mid.X, 5, tolerance) || !approxEqual(mid.Y, 5, tolerance) || !approxEqual(mid.Z, 2, tolerance) {
		t.Errorf("expected (5,5,2), got %v", mid)
	}
	if a.Lerp(b, 0) != a {
		t.Errorf("expected t=0 to return start")
	}
	if a.Lerp(b, 1) != b {
		t.Errorf("expected t=1 to return end")
	}
}

func TestMidPoint(t *testing.T) {
	m := MidPoint(Pt(0, 0, 0), Pt(4, 6, 8))
	if m != Pt(2, 3, 4) {
		t.Errorf("expected (2,3,4), got %v", m)
	}
}

func TestPlanarLength(t *testing.T) {
	p := Pt(3, 4, 12)
	if !approxEqual(p.PlanarLength(), 5, tolerance) {
		t.Errorf("expected planar length 5, got %f", p.PlanarLength())
	}
	if !approxEqual(p.Length(), 13, tolerance) {
		t.Errorf("expected length 13, got %f", p.Length())
	}
}
