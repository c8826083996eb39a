// Package perturb provides the perturbation strategies the optimizer draws
// candidate moves from. A strategy produces one modified copy of a path per
// call and is told afterwards whether the move was accepted, which lets it
// plan short sequences of correlated follow-up moves.
package perturb

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/nine-gs/ScrambleOpt/pkg/cost"
	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

// Display names for the built-in strategies.
const (
	RelocateName     = "Relocate Point Mover"
	TranslateAllName = "Translate All Mover"
)

// Strategy produces candidate modifications of a path. Implementations own
// whatever move-planning state they need; a single instance must not be
// shared across concurrent optimization runs.
type Strategy interface {
	// Name returns the strategy's display name.
	Name() string

	// Perturb returns a modified copy of p, or p itself when no move is
	// possible. eval may be nil, in which case the strategy cannot rank its
	// own candidates and returns an unranked one. Cancellation via ctx is
	// polled between evaluations; the best candidate found so far is
	// returned on early exit.
	Perturb(ctx context.Context, p *route.Path, eval cost.Bound) *route.Path

	// MoveAccepted notifies the strategy that its last candidate replaced
	// prev as the optimizer's current path.
	MoveAccepted(prev, next *route.Path)

	// MoveRejected notifies the strategy that its last candidate was
	// discarded, cancelling any pending follow-up plan.
	MoveRejected()
}

// New constructs a strategy by display name, seeded for deterministic
// candidate generation.
func New(name string, seed int64) (Strategy, error) {
	switch name {
	case RelocateName:
		return NewRelocate(seed), nil
	case TranslateAllName:
		return NewTranslateAll(seed), nil
	}
	return nil, fmt.Errorf("perturb: unknown strategy %q", name)
}

// Names returns the display names of the built-in strategies, sorted.
func Names() []string {
	names := []string{RelocateName, TranslateAllName}
	sort.Strings(names)
	return names
}

// cancelled reports whether the context carries a cancellation. Safe to call
// with a nil context.
func cancelled(ctx context.Context) bool {
	return ctx != nil && ctx.Err() != nil
}

// candidateCost scores a candidate, mapping evaluation failures to +Inf so a
// bad candidate loses ranking instead of aborting the search.
func candidateCost(eval cost.Bound, p *route.Path) float64 {
	if eval == nil {
		return 0
	}
	c, err := eval(p)
	if err != nil {
		return math.Inf(1)
	}
	return c
}

// movementRadius derives the sampling radius from the path's mean segment
// length: a quarter of it, at least 1 cell, or 5 cells for a path with no
// segments.
func movementRadius(p *route.Path) float64 {
	segs := p.Segments()
	if len(segs) == 0 {
		return 5.0
	}
	total := 0.0
	for _, s := range segs {
		total += s.Distance
	}
	mean := total / float64(len(segs))
	return math.Max(1.0, 0.25*mean)
}

// polarOffset draws a uniform random direction and a uniform random distance
// within radius.
func polarOffset(rng *rand.Rand, radius float64) (dx, dy float64) {
	angle := rng.Float64() * 2 * math.Pi
	d := rng.Float64() * radius
	return d * math.Cos(angle), d * math.Sin(angle)
}
