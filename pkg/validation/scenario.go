package validation

import (
	"fmt"

	"github.com/nine-gs/ScrambleOpt/pkg/cost"
	"github.com/nine-gs/ScrambleOpt/pkg/optimize"
	"github.com/nine-gs/ScrambleOpt/pkg/perturb"
	"github.com/nine-gs/ScrambleOpt/pkg/spec"
)

// ValidateScenario performs schema-level validation on a parsed scenario.
// It checks structural correctness against the given registries before any
// terrain is loaded.
func ValidateScenario(s *spec.Scenario, costs *cost.Registry, solvers *optimize.Registry) *Report {
	r := NewReport()

	validateDEM(s, r)
	validateRoute(s, r)
	validateCost(s, costs, r)
	validateOptimizer(s, solvers, r)
	validateObstacles(s, r)

	return r
}

func validateDEM(s *spec.Scenario, r *Report) {
	hasFile := s.DEM.File != ""
	hasSynthetic := s.DEM.Synthetic != nil

	switch {
	case !hasFile && !hasSynthetic:
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "dem must name a grid file or a synthetic terrain",
			SpecPath: "dem",
			Expected: "exactly one of file, synthetic",
		})
		return
	case hasFile && hasSynthetic:
		r.AddError(Result{
			Level:        LevelSchema,
			Message:      "dem.file and dem.synthetic are mutually exclusive",
			SpecPath:     "dem.file",
			ConflictWith: "dem.synthetic",
		})
		return
	}

	if hasSynthetic {
		syn := s.DEM.Synthetic
		if syn.Width <= 0 || syn.Height <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("synthetic terrain size %dx%d is not usable", syn.Width, syn.Height),
				SpecPath:    "dem.synthetic",
				ActualValue: fmt.Sprintf("%dx%d", syn.Width, syn.Height),
				Expected:    "width > 0 and height > 0",
			})
		}
		if syn.Relief < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "dem.synthetic.relief must be non-negative",
				SpecPath:    "dem.synthetic.relief",
				ActualValue: syn.Relief,
				Expected:    ">= 0",
			})
		}
	}
}

func validateRoute(s *spec.Scenario, r *Report) {
	if len(s.Route.Points) < 2 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "route.points must contain at least 2 points",
			SpecPath:    "route.points",
			ActualValue: len(s.Route.Points),
			Expected:    "at least 2 points",
		})
	}
}

func validateCost(s *spec.Scenario, costs *cost.Registry, r *Report) {
	if _, ok := costs.Get(s.Cost.Model); !ok {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown cost model %q", s.Cost.Model),
			SpecPath:    "cost.model",
			ActualValue: s.Cost.Model,
			Suggestions: costs.Names(),
		})
	}
	if s.Cost.TimeHours <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "cost.time_hours must be greater than 0",
			SpecPath:    "cost.time_hours",
			ActualValue: s.Cost.TimeHours,
			Expected:    "> 0",
		})
	}
}

func validateOptimizer(s *spec.Scenario, solvers *optimize.Registry, r *Report) {
	if _, ok := solvers.Get(s.Optimizer.Solver); !ok {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown solver %q", s.Optimizer.Solver),
			SpecPath:    "optimizer.solver",
			ActualValue: s.Optimizer.Solver,
			Suggestions: solvers.Names(),
		})
	}
	if s.Optimizer.Iterations <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "optimizer.iterations must be greater than 0",
			SpecPath:    "optimizer.iterations",
			ActualValue: s.Optimizer.Iterations,
			Expected:    "> 0",
		})
	}

	if len(s.Optimizer.Strategies) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "optimizer.strategies must name at least one strategy",
			SpecPath: "optimizer.strategies",
			Expected: "at least 1 strategy",
		})
		return
	}
	known := perturb.Names()
	for i, st := range s.Optimizer.Strategies {
		if !contains(known, st.Name) {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("optimizer.strategies[%d]: unknown strategy %q", i, st.Name),
				SpecPath:    fmt.Sprintf("optimizer.strategies[%d].name", i),
				ActualValue: st.Name,
				Suggestions: known,
			})
		}
		if st.Samples < 0 || st.RefineRounds < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("optimizer.strategies[%d]: samples and refine_rounds must be non-negative", i),
				SpecPath:    fmt.Sprintf("optimizer.strategies[%d]", i),
				ActualValue: fmt.Sprintf("samples=%d refine_rounds=%d", st.Samples, st.RefineRounds),
				Expected:    ">= 0 (0 means the built-in default)",
			})
		}
	}
}

func validateObstacles(s *spec.Scenario, r *Report) {
	for i, ob := range s.Obstacles {
		if ob.MaxX <= ob.MinX || ob.MaxY <= ob.MinY {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("obstacles[%d] (%s): max corner must exceed min corner", i, ob.Name),
				SpecPath:    fmt.Sprintf("obstacles[%d]", i),
				ActualValue: fmt.Sprintf("(%.1f,%.1f)-(%.1f,%.1f)", ob.MinX, ob.MinY, ob.MaxX, ob.MaxY),
				Expected:    "min_x < max_x and min_y < max_y",
			})
		}
		if ob.Name == "" {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("obstacles[%d] has no name; clearance findings will be hard to read", i),
				SpecPath:    fmt.Sprintf("obstacles[%d].name", i),
				Suggestions: []string{"give each obstacle a short descriptive name"},
			})
		}
	}
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}
