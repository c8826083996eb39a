package perturb

import (
	"context"
	"math/rand"

	"github.com/nine-gs/ScrambleOpt/pkg/cost"
	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

// TranslateAll shifts the whole route by a single random offset drawn from
// the movement radius, re-reading every elevation at the new positions.
// Locked endpoints stay anchored, so a locked route stretches toward the
// offset rather than sliding rigidly. The single candidate is left for the
// optimizer to judge; nothing is evaluated locally and no follow-up plan is
// kept.
type TranslateAll struct {
	rng *rand.Rand
}

// NewTranslateAll returns a whole-route translation strategy, seeded for
// deterministic candidate generation.
func NewTranslateAll(seed int64) *TranslateAll {
	return &TranslateAll{rng: rngFromSeed(seed)}
}

// Name returns the strategy's display name.
func (t *TranslateAll) Name() string { return TranslateAllName }

// Perturb returns a copy of p with every unlocked point offset by one
// random draw. Paths with fewer than three points come back unchanged.
func (t *TranslateAll) Perturb(ctx context.Context, p *route.Path, _ cost.Bound) *route.Path {
	if p.Len() < 3 {
		return p
	}
	if cancelled(ctx) {
		return p
	}

	dx, dy := polarOffset(t.rng, movementRadius(p))
	cand := p.Clone()
	for i := range cand.Points {
		nudge(cand, i, dx, dy)
	}
	if cand.Source() != nil {
		cand.UpdateAllZ()
	}
	return cand
}

// MoveAccepted is a no-op; translation plans no follow-up moves.
func (t *TranslateAll) MoveAccepted(_, _ *route.Path) {}

// MoveRejected is a no-op.
func (t *TranslateAll) MoveRejected() {}
