package validation

import (
	"testing"

	"github.com/nine-gs/ScrambleOpt/pkg/dem"
	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

func flatPath(coords ...[2]float64) *route.Path {
	p := route.New(nil)
	for _, c := range coords {
		p.AddPointZ(c[0], c[1], 0)
	}
	return p
}

func TestValidateRoutePointsInBounds(t *testing.T) {
	src := dem.NewUniform(50, 50, 10)
	p := flatPath([2]float64{5, 5}, [2]float64{20, 30}, [2]float64{49.9, 49.9})

	r := ValidateRoutePoints(p, src)
	if !r.Valid {
		t.Errorf("expected valid report, got errors: %v", r.Errors)
	}
	if len(r.Info) != 1 {
		t.Errorf("expected 1 info result, got %d", len(r.Info))
	}
}

func TestValidateRoutePointsOutside(t *testing.T) {
	src := dem.NewUniform(50, 50, 10)
	p := flatPath([2]float64{5, 5}, [2]float64{60, 5}, [2]float64{5, -3})

	r := ValidateRoutePoints(p, src)
	if r.Valid {
		t.Error("expected invalid report for out-of-bounds points")
	}
	if len(r.Errors) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(r.Errors), r.Errors)
	}
	if len(r.Info) != 0 {
		t.Error("the all-in-bounds info line must not appear")
	}
}

func TestValidateRoutePointsDuplicateWarning(t *testing.T) {
	src := dem.NewUniform(50, 50, 10)
	p := flatPath([2]float64{5, 5}, [2]float64{5, 5}, [2]float64{20, 20})

	r := ValidateRoutePoints(p, src)
	if !r.Valid {
		t.Errorf("coinciding points are a warning, not an error: %v", r.Errors)
	}
	if len(r.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(r.Warnings))
	}
}

func TestValidateRoutePointsNoSource(t *testing.T) {
	r := ValidateRoutePoints(flatPath([2]float64{1, 1}), nil)
	if r.Valid {
		t.Error("expected invalid report without an elevation source")
	}
}

func TestValidateRoutePointsEmptyRoute(t *testing.T) {
	r := ValidateRoutePoints(route.New(nil), dem.NewUniform(10, 10, 0))
	if r.Valid {
		t.Error("expected invalid report for an empty route")
	}
}
