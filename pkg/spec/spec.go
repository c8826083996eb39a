// Package spec loads scenario files: YAML documents describing a terrain
// source, a route, a cost model, and optimizer settings.
package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nine-gs/ScrambleOpt/pkg/cost"
	"github.com/nine-gs/ScrambleOpt/pkg/optimize"
	"github.com/nine-gs/ScrambleOpt/pkg/perturb"
)

// DefaultRelief is the synthetic-terrain elevation span used when a
// scenario omits one.
const DefaultRelief = 50.0

// Load reads a scenario from a YAML file and fills in defaults.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var scn Scenario
	if err := yaml.Unmarshal(data, &scn); err != nil {
		return nil, fmt.Errorf("parsing scenario YAML: %w", err)
	}

	scn.applyDefaults()
	return &scn, nil
}

// applyDefaults fills the optional sections so downstream code never
// branches on absent settings: locked endpoints, the walking model over one
// hour, the built-in solver at its full budget, and a single relocate
// strategy.
func (s *Scenario) applyDefaults() {
	if s.Route.Locked == nil {
		locked := true
		s.Route.Locked = &locked
	}
	if s.Cost.Model == "" {
		s.Cost.Model = cost.WalkingName
	}
	if s.Cost.TimeHours == 0 {
		s.Cost.TimeHours = 1
	}
	if s.Optimizer.Solver == "" {
		s.Optimizer.Solver = optimize.LocalSearchName
	}
	if s.Optimizer.Iterations == 0 {
		s.Optimizer.Iterations = optimize.DefaultMaxIterations
	}
	if len(s.Optimizer.Strategies) == 0 {
		s.Optimizer.Strategies = []StrategySpec{{Name: perturb.RelocateName}}
	}
	if s.DEM.Synthetic != nil && s.DEM.Synthetic.Relief == 0 {
		s.DEM.Synthetic.Relief = DefaultRelief
	}
}
