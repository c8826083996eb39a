package perturb

import (
	"context"
	"testing"

	"github.com/nine-gs/ScrambleOpt/pkg/dem"
	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

func zigzagPath(src dem.Source) *route.Path {
	p := route.New(src)
	p.AddPointZ(20, 20, 0)
	p.AddPointZ(40, 35, 0)
	p.AddPointZ(60, 20, 0)
	p.AddPointZ(80, 35, 0)
	return p
}

func TestTranslateAllShiftsEveryPoint(t *testing.T) {
	s := NewTranslateAll(1)
	p := zigzagPath(nil)

	got := s.Perturb(context.Background(), p, nil)
	if got == p {
		t.Fatal("expected a translated candidate")
	}
	dx := got.Points[0].X - p.Points[0].X
	dy := got.Points[0].Y - p.Points[0].Y
	if dx == 0 && dy == 0 {
		t.Fatal("translation offset should be nonzero")
	}
	for i := range p.Points {
		if !approxEqual(got.Points[i].X, p.Points[i].X+dx, tolerance) ||
			!approxEqual(got.Points[i].Y, p.Points[i].Y+dy, tolerance) {
			t.Errorf("point %d not shifted by the common offset (%v, %v)", i, dx, dy)
		}
		if !approxEqual(got.Points[i].Z, 0, tolerance) {
			t.Errorf("point %d: without a source z must stay put", i)
		}
	}
}

func TestTranslateAllLockedEndpointsFixed(t *testing.T) {
	s := NewTranslateAll(1)
	p := zigzagPath(nil)
	p.Locked = true

	got := s.Perturb(context.Background(), p, nil)
	if got == p {
		t.Fatal("expected a translated candidate")
	}
	if got.Points[0] != p.Points[0] || got.Points[3] != p.Points[3] {
		t.Error("locked endpoints must stay anchored")
	}
	if got.Points[1] == p.Points[1] || got.Points[2] == p.Points[2] {
		t.Error("interior points should still shift")
	}
}

func TestTranslateAllTooShortUnchanged(t *testing.T) {
	s := NewTranslateAll(1)
	p := route.New(nil)
	p.AddPointZ(0, 0, 0)
	p.AddPointZ(10, 0, 0)

	if got := s.Perturb(context.Background(), p, nil); got != p {
		t.Error("paths under 3 points must come back unchanged")
	}
}

func TestTranslateAllResamplesElevation(t *testing.T) {
	g := dem.NewUniform(200, 200, 42)
	s := NewTranslateAll(1)
	p := zigzagPath(g)

	got := s.Perturb(context.Background(), p, nil)
	if got == p {
		t.Fatal("expected a translated candidate")
	}
	for i, pt := range got.Points {
		if !approxEqual(pt.Z, 42, tolerance) {
			t.Errorf("point %d: z = %v, want resampled 42", i, pt.Z)
		}
	}
}

func TestTranslateAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewTranslateAll(1)
	p := zigzagPath(nil)
	if got := s.Perturb(ctx, p, nil); got != p {
		t.Error("cancelled context should return the input unchanged")
	}
}

func TestTranslateAllDeterminism(t *testing.T) {
	a := NewTranslateAll(9).Perturb(context.Background(), zigzagPath(nil), nil)
	b := NewTranslateAll(9).Perturb(context.Background(), zigzagPath(nil), nil)

	for i := range a.Points {
		if a.Points[i] != b.Points[i] {
			t.Errorf("same seed diverged at point %d", i)
		}
	}
}
