package validation

import (
	"fmt"

	"github.com/nine-gs/ScrambleOpt/pkg/dem"
	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

// ValidateRoutePoints performs spatial validation of a built route against
// the loaded terrain. Points are judged at the truncated integer cell the
// sampler reads.
func ValidateRoutePoints(p *route.Path, src dem.Source) *Report {
	r := NewReport()

	if p == nil || p.Len() == 0 {
		r.AddError(Result{
			Level:    LevelSpatial,
			Message:  "no route to validate",
			SpecPath: "route.points",
		})
		return r
	}
	if src == nil {
		r.AddError(Result{
			Level:    LevelSpatial,
			Message:  "no elevation source loaded",
			SpecPath: "dem",
		})
		return r
	}

	w, h := src.Bounds()
	outside := 0
	for i, pt := range p.Points {
		x, y := int(pt.X), int(pt.Y)
		if x < 0 || x >= w || y < 0 || y >= h {
			outside++
			r.AddError(Result{
				Level:       LevelSpatial,
				Message:     fmt.Sprintf("route point %d (%.1f, %.1f) lies outside the %dx%d terrain", i, pt.X, pt.Y, w, h),
				SpecPath:    fmt.Sprintf("route.points[%d]", i),
				ActualValue: fmt.Sprintf("(%.1f, %.1f)", pt.X, pt.Y),
				Expected:    fmt.Sprintf("0 <= x < %d and 0 <= y < %d", w, h),
			})
		}
	}

	for i := 1; i < p.Len(); i++ {
		if p.Points[i].X == p.Points[i-1].X && p.Points[i].Y == p.Points[i-1].Y {
			r.AddWarning(Result{
				Level:       LevelSpatial,
				Message:     fmt.Sprintf("route points %d and %d coincide", i-1, i),
				SpecPath:    fmt.Sprintf("route.points[%d]", i),
				Suggestions: []string{"drop the duplicate or consolidate clusters"},
			})
		}
	}

	if outside == 0 {
		r.AddInfo(Result{
			Level:    LevelSpatial,
			Message:  fmt.Sprintf("all %d route points lie within the %dx%d terrain", p.Len(), w, h),
			SpecPath: "route.points",
		})
	}

	return r
}
