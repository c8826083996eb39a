// Package cost defines the cost-function family used to score candidate
// routes, plus the registry hosts use to look models up by display name.
//
// A cost function maps a path and a time budget in hours to a scalar where
// larger is worse. The built-in models are pure and safe for concurrent use.
package cost

import (
	"math"

	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

// Func scores a path against a time budget in hours. Implementations must
// hold no mutable state; the optimizer calls them from candidate
// evaluations without synchronization.
type Func func(p *route.Path, hours float64) (float64, error)

// Bound is a Func with the time budget already applied.
type Bound func(p *route.Path) (float64, error)

// Bind fixes the time budget, producing the single-argument form the
// optimizer and perturbation strategies consume.
func (f Func) Bind(hours float64) Bound {
	return func(p *route.Path) (float64, error) {
		return f(p, hours)
	}
}

// Running is the RE3 running-energy model. Cost combines the time budget, a
// linear distance term, a pace term quadratic in segment length, and a
// climb term attenuated by a double exponential of the segment grade.
// Paths with fewer than two points score 0.
func Running(p *route.Path, hours float64) (float64, error) {
	segCount := p.Len() - 1
	if segCount <= 0 {
		return 0, nil
	}
	segTime := hours * 3600 / float64(segCount) // seconds per segment
	if segTime == 0 {
		segTime = MinSegmentTime
	}

	total := RunningTimeCoeff * hours
	for _, s := range p.Segments() {
		total += RunningDistanceCoeff * s.Distance
		total += RunningPaceCoeff * s.Distance * s.Distance / segTime
		inner := 1 - math.Pow(RunningGradeBase, s.DZ/s.Distance+RunningGradeOffset)
		total += RunningClimbCoeff * s.DZ * (1 - math.Pow(RunningClimbBase, inner))
	}
	return total, nil
}

// Walking is the ACSM walking-energy model: a linear mix of total distance,
// raw elevation delta (descents offset climbs), and the time budget. Paths
// with fewer than two points score 0.
func Walking(p *route.Path, hours float64) (float64, error) {
	if p.Len() < 2 {
		return 0, nil
	}
	total := WalkingTimeCoeff * hours
	for _, s := range p.Segments() {
		total += WalkingDistanceCoeff*s.Distance + WalkingClimbCoeff*s.DZ
	}
	return total, nil
}

// ClimbAversion scores a path by its total climb plus a small distance
// term. The time budget is ignored.
func ClimbAversion(p *route.Path, _ float64) (float64, error) {
	var climb, dist float64
	for _, s := range p.Segments() {
		if s.DZ > 0 {
			climb += s.DZ
		}
		dist += s.Distance
	}
	return climb + dist/ClimbAversionDistanceDivisor, nil
}
