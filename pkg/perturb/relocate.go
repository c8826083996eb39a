package perturb

import (
	"context"
	"math"
	"math/rand"

	"github.com/nine-gs/ScrambleOpt/pkg/cost"
	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

// Relocate tunables.
const (
	// DefaultSamples is the number of coarse candidate offsets drawn around
	// the chosen point.
	DefaultSamples = 16
	// DefaultRefineRounds caps the halving-radius refinement passes around
	// the best coarse candidate.
	DefaultRefineRounds = 6

	// Accepted moves seed a plan that re-applies half the displacement to
	// the center's neighbors over the next three accepted iterations.
	propagationNeighborFrac = 0.5
	propagationSteps        = 3
)

// propagationPlan records a center-point displacement to be partially
// re-applied to the center's neighbors over a bounded number of subsequent
// accepted iterations.
type propagationPlan struct {
	center       int
	dx, dy       float64
	neighborFrac float64
	stepsLeft    int
}

// lastMove is the net displacement of the most recent candidate, kept until
// the optimizer reports the move's fate.
type lastMove struct {
	index  int
	dx, dy float64
}

// Relocate moves a single random interior point by local sampling and
// hill-climb: coarse polar offsets within a quarter of the mean segment
// length, then refinement rounds at halved radius around the best find.
// Accepted moves seed a propagation plan that nudges the moved point's
// neighbors in the same direction on following iterations.
type Relocate struct {
	Samples      int
	RefineRounds int

	rng  *rand.Rand
	plan *propagationPlan
	last *lastMove
}

// NewRelocate returns a relocation strategy with default tunables, seeded
// for deterministic candidate generation.
func NewRelocate(seed int64) *Relocate {
	return &Relocate{
		Samples:      DefaultSamples,
		RefineRounds: DefaultRefineRounds,
		rng:          rngFromSeed(seed),
	}
}

// Name returns the strategy's display name.
func (r *Relocate) Name() string { return RelocateName }

// Perturb returns a copy of p with one interior point relocated. Paths with
// fewer than three points have no interior and come back unchanged. When a
// propagation plan is active its candidate is synthesized directly, without
// local evaluation; the optimizer judges it like any other move.
func (r *Relocate) Perturb(ctx context.Context, p *route.Path, eval cost.Bound) *route.Path {
	if p.Len() < 3 {
		return p
	}

	if r.plan != nil && r.plan.stepsLeft > 0 {
		if cand := r.propagate(p); cand != nil {
			return cand
		}
		// The plan's center no longer exists; fall through to fresh sampling.
		r.plan = nil
	}

	idx := 1 + r.rng.Intn(p.Len()-2)
	radius := movementRadius(p)

	best := p
	bestCost := math.Inf(1)
	if eval != nil {
		if c, err := eval(p); err == nil {
			bestCost = c
		}
	}

	// Coarse pass over the full movement radius.
	for s := 0; s < r.Samples; s++ {
		if cancelled(ctx) {
			return best
		}
		dx, dy := polarOffset(r.rng, radius)
		cand := displaced(p, idx, dx, dy)
		if cancelled(ctx) {
			return best
		}
		if c := candidateCost(eval, cand); c < bestCost {
			bestCost = c
			best = cand
			r.recordMove(p, cand, idx)
		}
	}

	// Hill-climb: shrink the radius around the best candidate until a round
	// yields no improvement.
	for round := 0; round < r.RefineRounds; round++ {
		improved := false
		shrunk := radius * math.Pow(0.5, float64(round+1))
		for s := 0; s < max(8, r.Samples/2); s++ {
			if cancelled(ctx) {
				return best
			}
			dx, dy := polarOffset(r.rng, shrunk)
			cand := displaced(best, idx, dx, dy)
			if cancelled(ctx) {
				return best
			}
			if c := candidateCost(eval, cand); c < bestCost {
				bestCost = c
				best = cand
				r.recordMove(p, cand, idx)
				improved = true
			}
		}
		if !improved {
			break
		}
	}

	if best == p {
		r.last = nil
	}
	return best
}

// MoveAccepted seeds or advances the propagation plan after the optimizer
// adopts this strategy's candidate. A plan already tracking the same center
// adopts the latest displacement and burns one step; otherwise a fresh plan
// starts for the moved point.
func (r *Relocate) MoveAccepted(_, _ *route.Path) {
	if r.last == nil {
		return
	}
	if r.plan != nil && r.plan.center == r.last.index {
		r.plan.dx = r.last.dx
		r.plan.dy = r.last.dy
		r.plan.stepsLeft--
		if r.plan.stepsLeft <= 0 {
			r.plan = nil
		}
		return
	}
	r.plan = &propagationPlan{
		center:       r.last.index,
		dx:           r.last.dx,
		dy:           r.last.dy,
		neighborFrac: propagationNeighborFrac,
		stepsLeft:    propagationSteps,
	}
}

// MoveRejected drops the propagation plan; a rejected move means the drift
// it tracked is no longer worth following.
func (r *Relocate) MoveRejected() {
	r.plan = nil
}

// propagate synthesizes the plan's follow-up candidate: the center gets the
// full recorded displacement, its immediate neighbors half of it. Locked
// endpoints stay put. Returns nil when the plan's center index has outlived
// the path.
func (r *Relocate) propagate(p *route.Path) *route.Path {
	center := r.plan.center
	if center < 0 || center >= p.Len() {
		return nil
	}
	cand := p.Clone()
	nudge(cand, center, r.plan.dx, r.plan.dy)
	nudge(cand, center-1, r.plan.dx*r.plan.neighborFrac, r.plan.dy*r.plan.neighborFrac)
	nudge(cand, center+1, r.plan.dx*r.plan.neighborFrac, r.plan.dy*r.plan.neighborFrac)
	if cand.Source() != nil {
		cand.UpdateAllZ()
	}
	r.last = &lastMove{index: center, dx: r.plan.dx, dy: r.plan.dy}
	return cand
}

// recordMove stores the net displacement of the moved point relative to its
// position in the pre-perturbation path.
func (r *Relocate) recordMove(orig, cand *route.Path, idx int) {
	r.last = &lastMove{
		index: idx,
		dx:    cand.Points[idx].X - orig.Points[idx].X,
		dy:    cand.Points[idx].Y - orig.Points[idx].Y,
	}
}

// displaced clones src with the point at idx offset by (dx, dy) and every
// elevation re-read from the source.
func displaced(src *route.Path, idx int, dx, dy float64) *route.Path {
	cand := src.Clone()
	cand.Points[idx].X += dx
	cand.Points[idx].Y += dy
	if cand.Source() != nil {
		cand.UpdateAllZ()
	}
	return cand
}

// nudge offsets the point at i in place, skipping out-of-range indices and
// locked endpoints.
func nudge(p *route.Path, i int, dx, dy float64) {
	if i < 0 || i >= p.Len() {
		return
	}
	if p.Locked && p.IsEndpoint(i) {
		return
	}
	p.Points[i].X += dx
	p.Points[i].Y += dy
}
