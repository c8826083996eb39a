package route

import "github.com/nine-gs/ScrambleOpt/pkg/geo"

// DefaultSimplifyTolerance is the collinearity threshold used when callers
// pass no explicit tolerance.
const DefaultSimplifyTolerance = 1e-3

// Simplify returns a copy of p with near-collinear interior points removed.
// An interior point is dropped when the cross product of its normalized
// incoming and outgoing direction vectors has magnitude <= tolerance; a
// point adjacent to a degenerate (shorter than tolerance) segment is always
// kept. Endpoints are always kept.
//
// The decision for each point uses its neighbors in the original path, in a
// single pass; removals do not cascade.
func Simplify(p *Path, tolerance float64) *Path {
	if len(p.Points) <= 2 {
		return p.Clone()
	}

	keep := make([]geo.Point3, 0, len(p.Points))
	keep = append(keep, p.Points[0])
	for i := 1; i < len(p.Points)-1; i++ {
		v1 := p.Points[i].Sub(p.Points[i-1])
		v2 := p.Points[i+1].Sub(p.Points[i])
		if v1.Length() < tolerance || v2.Length() < tolerance {
			keep = append(keep, p.Points[i])
			continue
		}
		cross := v1.Normalize().Cross(v2.Normalize()).Length()
		if cross > tolerance {
			keep = append(keep, p.Points[i])
		}
	}
	keep = append(keep, p.Points[len(p.Points)-1])

	return &Path{Points: keep, Locked: p.Locked, src: p.src}
}
