// Package optimize drives the iterative route search: it draws candidate
// moves from perturbation strategies, keeps candidates dense enough for
// stable cost evaluation, and decides acceptance under a fixed tolerance
// that admits every improvement and mildly worsening moves.
package optimize

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/nine-gs/ScrambleOpt/pkg/cost"
	"github.com/nine-gs/ScrambleOpt/pkg/perturb"
	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

var (
	// ErrNoPath reports an optimization request without a path.
	ErrNoPath = errors.New("optimize: no path to optimize")
	// ErrNoCostFunction reports an optimization request without an evaluator.
	ErrNoCostFunction = errors.New("optimize: no cost function")
	// ErrNoStrategies reports an optimization request without any
	// perturbation strategy to draw moves from.
	ErrNoStrategies = errors.New("optimize: no perturbation strategies")
)

// ProgressFunc receives the best path found so far, its cost, and the
// number of completed iterations. The path is a private copy; hosts may
// render or store it freely.
type ProgressFunc func(best *route.Path, bestCost float64, iterations int)

// Solver runs an iterative search over candidate routes.
type Solver interface {
	// Name returns the solver's display name.
	Name() string

	// Optimize searches from p and returns the best path and cost
	// observed. The input path is never modified. Cancellation via ctx is
	// polled at the loop's checkpoints and ends the search early with the
	// best result so far.
	Optimize(ctx context.Context, p *route.Path, eval cost.Bound, strategies []perturb.Strategy, progress ProgressFunc) (*route.Path, float64, error)
}

// LocalSearch tunables.
const (
	// DefaultMaxIterations caps the search loop.
	DefaultMaxIterations = 1000
	// DefaultAcceptTolerance is the fixed cost increase still accepted as a
	// move. Stored scenarios depend on this exact absolute threshold; it is
	// not an annealing schedule.
	DefaultAcceptTolerance = 1.0
	// DefaultProgressInterval is the iteration stride between progress
	// callbacks.
	DefaultProgressInterval = 10
	// DefaultMinSegmentFraction bounds how long any candidate segment may
	// be relative to the candidate's total length; longer segments trigger
	// resegmentation before evaluation.
	DefaultMinSegmentFraction = 0.05
)

// LocalSearchName is the solver's display name.
const LocalSearchName = "Custom Solver"

// LocalSearch is the threshold-acceptance search loop: each iteration asks
// a random strategy for a candidate, densifies it, and accepts it when the
// cost rises by no more than AcceptTolerance. The best path observed is
// tracked separately and only replaced on strict improvement.
type LocalSearch struct {
	MaxIterations      int
	AcceptTolerance    float64
	ProgressInterval   int
	MinSegmentFraction float64

	rng *rand.Rand
}

// NewLocalSearch returns a solver with the default tunables, seeded for a
// deterministic strategy pick order.
func NewLocalSearch(seed int64) *LocalSearch {
	return &LocalSearch{
		MaxIterations:      DefaultMaxIterations,
		AcceptTolerance:    DefaultAcceptTolerance,
		ProgressInterval:   DefaultProgressInterval,
		MinSegmentFraction: DefaultMinSegmentFraction,
		rng:                rngFromSeed(seed),
	}
}

// Name returns the solver's display name.
func (s *LocalSearch) Name() string { return LocalSearchName }

// Optimize runs the search loop. The initial evaluation must succeed; after
// that, a failing candidate evaluation scores +Inf and loses acceptance
// instead of aborting the run.
func (s *LocalSearch) Optimize(ctx context.Context, p *route.Path, eval cost.Bound, strategies []perturb.Strategy, progress ProgressFunc) (*route.Path, float64, error) {
	if p == nil {
		return nil, 0, ErrNoPath
	}
	if eval == nil {
		return nil, 0, ErrNoCostFunction
	}
	if len(strategies) == 0 {
		return nil, 0, ErrNoStrategies
	}

	current := p.Clone()
	currentCost, err := eval(current)
	if err != nil {
		return nil, 0, fmt.Errorf("optimize: initial evaluation: %w", err)
	}
	best := current.Clone()
	bestCost := currentCost

	// The candidate floor: resegmenting never drops below the starting
	// point count even when the candidate has shrunk.
	targetCount := p.Len()

	iterations := 0
	for {
		if cancelled(ctx) {
			break
		}

		strategy := strategies[s.rng.Intn(len(strategies))]
		candidate := strategy.Perturb(ctx, current.Clone(), eval)
		candidate = s.densify(candidate, targetCount)

		if cancelled(ctx) {
			break
		}

		candidateCost, err := eval(candidate)
		if err != nil {
			candidateCost = math.Inf(1)
		}

		if candidateCost-currentCost <= s.AcceptTolerance {
			prev := current
			current = candidate
			currentCost = candidateCost
			strategy.MoveAccepted(prev, candidate)
			if candidateCost < bestCost {
				best = candidate.Clone()
				bestCost = candidateCost
			}
		} else {
			strategy.MoveRejected()
		}

		iterations++
		if progress != nil && iterations%s.ProgressInterval == 0 {
			progress(best.Clone(), bestCost, iterations)
		}
		if iterations >= s.MaxIterations {
			break
		}
	}

	return best, bestCost, nil
}

// densify resegments a candidate whose longest allowed segment would exceed
// MinSegmentFraction of its total length, so sparse candidates cannot game
// per-segment cost terms. The target never drops below the starting point
// count.
func (s *LocalSearch) densify(p *route.Path, targetCount int) *route.Path {
	total := p.TotalDistance()
	if total <= 0 {
		return p
	}
	maxSegment := math.Max(total*s.MinSegmentFraction, 1e-12)
	desired := int(math.Ceil(total/maxSegment)) + 1
	if targetCount > desired {
		desired = targetCount
	}
	if resegmented := route.Resegment(p, desired); resegmented != nil {
		return resegmented
	}
	return p
}

// cancelled reports whether the context carries a cancellation. Safe to
// call with a nil context.
func cancelled(ctx context.Context) bool {
	return ctx != nil && ctx.Err() != nil
}
