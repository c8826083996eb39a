package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/nine-gs/ScrambleOpt/internal/server"
	"github.com/nine-gs/ScrambleOpt/pkg/clearance"
	"github.com/nine-gs/ScrambleOpt/pkg/cost"
	"github.com/nine-gs/ScrambleOpt/pkg/dem"
	"github.com/nine-gs/ScrambleOpt/pkg/geojson"
	"github.com/nine-gs/ScrambleOpt/pkg/optimize"
	"github.com/nine-gs/ScrambleOpt/pkg/perturb"
	"github.com/nine-gs/ScrambleOpt/pkg/route"
	"github.com/nine-gs/ScrambleOpt/pkg/spec"
	"github.com/nine-gs/ScrambleOpt/pkg/validation"
)

// loadAndValidate loads a scenario file and checks it against the default
// cost and solver registries.
func loadAndValidate(path string) (*spec.Scenario, *validation.Report, error) {
	scn, err := spec.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading scenario: %w", err)
	}

	report := validation.ValidateScenario(scn, cost.DefaultRegistry(), optimize.DefaultRegistry())
	return scn, report, nil
}

// buildDEM constructs the elevation source the scenario names, either a
// raster file or a synthetic surface.
func buildDEM(scn *spec.Scenario) (dem.Source, error) {
	if scn.DEM.File != "" {
		src, err := dem.ReadFile(scn.DEM.File)
		if err != nil {
			return nil, fmt.Errorf("loading DEM: %w", err)
		}
		return src, nil
	}

	syn := scn.DEM.Synthetic
	return dem.Synthetic(syn.Width, syn.Height, syn.Seed, syn.Relief), nil
}

// buildPath materializes the scenario route against src. Points with an
// explicit elevation keep it; the rest sample the terrain.
func buildPath(scn *spec.Scenario, src dem.Source) (*route.Path, error) {
	p := route.New(src)
	p.Locked = scn.LockedRoute()
	for i, pt := range scn.Route.Points {
		if pt.Z != nil {
			p.AddPointZ(pt.X, pt.Y, *pt.Z)
			continue
		}
		if err := p.AddPoint(pt.X, pt.Y); err != nil {
			return nil, fmt.Errorf("route point %d: %w", i, err)
		}
	}
	return p, nil
}

func buildEval(scn *spec.Scenario) (cost.Bound, error) {
	fn, ok := cost.DefaultRegistry().Get(scn.Cost.Model)
	if !ok {
		return nil, fmt.Errorf("unknown cost model %q", scn.Cost.Model)
	}
	return fn.Bind(scn.Cost.TimeHours), nil
}

func buildStrategies(scn *spec.Scenario) ([]perturb.Strategy, error) {
	strategies := make([]perturb.Strategy, 0, len(scn.Optimizer.Strategies))
	for _, st := range scn.Optimizer.Strategies {
		strat, err := perturb.New(st.Name, scn.Optimizer.Seed)
		if err != nil {
			return nil, err
		}
		if rel, ok := strat.(*perturb.Relocate); ok {
			if st.Samples > 0 {
				rel.Samples = st.Samples
			}
			if st.RefineRounds > 0 {
				rel.RefineRounds = st.RefineRounds
			}
		}
		strategies = append(strategies, strat)
	}
	return strategies, nil
}

func buildSolver(scn *spec.Scenario) (optimize.Solver, error) {
	factory, ok := optimize.DefaultRegistry().Get(scn.Optimizer.Solver)
	if !ok {
		return nil, fmt.Errorf("unknown solver %q", scn.Optimizer.Solver)
	}

	solver := factory(scn.Optimizer.Seed)
	if ls, ok := solver.(*optimize.LocalSearch); ok {
		ls.MaxIterations = scn.Optimizer.Iterations
	}
	return solver, nil
}

func buildObstacles(scn *spec.Scenario) *clearance.Index {
	obstacles := make([]clearance.Obstacle, 0, len(scn.Obstacles))
	for _, ob := range scn.Obstacles {
		obstacles = append(obstacles, clearance.Obstacle{
			Name: ob.Name,
			MinX: ob.MinX,
			MinY: ob.MinY,
			MaxX: ob.MaxX,
			MaxY: ob.MaxY,
		})
	}
	return clearance.NewIndex(obstacles)
}

func runValidate(path string) error {
	scn, report, err := loadAndValidate(path)
	if err != nil {
		return err
	}

	// Spatial checks only make sense once the scenario itself is sound.
	if report.Valid {
		src, err := buildDEM(scn)
		if err != nil {
			return err
		}

		// Keep every point, even ones the terrain would reject, so the
		// spatial pass can name the offenders.
		vp := route.New(src)
		vp.Locked = scn.LockedRoute()
		for _, pt := range scn.Route.Points {
			z := 0.0
			if pt.Z != nil {
				z = *pt.Z
			}
			vp.AddPointZ(pt.X, pt.Y, z)
		}
		report.Merge(validation.ValidateRoutePoints(vp, src))
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runCost(path string) error {
	scn, report, err := loadAndValidate(path)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("scenario has validation errors; fix before computing cost")
	}

	src, err := buildDEM(scn)
	if err != nil {
		return err
	}
	p, err := buildPath(scn, src)
	if err != nil {
		return err
	}

	printRouteSummary("Route", p)
	fmt.Println()
	return printCostTable(p, scn.Cost.TimeHours)
}

func runOptimize(path string) error {
	scn, report, err := loadAndValidate(path)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("scenario has validation errors; fix before optimizing")
	}

	src, err := buildDEM(scn)
	if err != nil {
		return err
	}
	p, err := buildPath(scn, src)
	if err != nil {
		return err
	}
	eval, err := buildEval(scn)
	if err != nil {
		return err
	}
	strategies, err := buildStrategies(scn)
	if err != nil {
		return err
	}
	solver, err := buildSolver(scn)
	if err != nil {
		return err
	}

	initial, err := eval(p)
	if err != nil {
		return fmt.Errorf("evaluating route: %w", err)
	}

	printRouteSummary("Initial route", p)
	fmt.Printf("Initial cost: %.3f (%s)\n\n", initial, scn.Cost.Model)

	// Ctrl-C stops the search; the best route found so far still comes back.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	progress := func(_ *route.Path, bestCost float64, iterations int) {
		log.Printf("iteration %d: best cost %.3f", iterations, bestCost)
	}

	best, bestCost, err := solver.Optimize(ctx, p, eval, strategies, progress)
	if err != nil {
		return fmt.Errorf("optimizing: %w", err)
	}
	if ctx.Err() != nil {
		log.Printf("interrupted, reporting best route so far")
	}

	fmt.Println()
	printRouteSummary("Best route", best)
	fmt.Printf("Best cost: %.3f (improved by %.3f)\n", bestCost, initial-bestCost)

	if violations := buildObstacles(scn).Check(best, 0); len(violations) > 0 {
		fmt.Println()
		printViolations(violations)
	}

	if scn.Output.GeoJSON != "" {
		if err := geojson.WriteFile(scn.Output.GeoJSON, best); err != nil {
			return fmt.Errorf("writing GeoJSON: %w", err)
		}
		fmt.Printf("\nWrote %s\n", scn.Output.GeoJSON)
	}
	return nil
}

func runResegment(path string, target int, output string) error {
	if target <= 0 {
		return fmt.Errorf("--target must be greater than zero")
	}

	scn, report, err := loadAndValidate(path)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("scenario has validation errors; fix before resegmenting")
	}

	src, err := buildDEM(scn)
	if err != nil {
		return err
	}
	p, err := buildPath(scn, src)
	if err != nil {
		return err
	}

	out := route.Resegment(p, target)
	if out == nil {
		fmt.Printf("Route already has %d points; nothing to add for target %d.\n", p.Len(), target)
		out = p
	} else {
		printRouteSummary("Resegmented route", out)
	}

	return writeOutput(output, out)
}

func runSimplify(path string, tolerance float64, output string) error {
	scn, report, err := loadAndValidate(path)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("scenario has validation errors; fix before simplifying")
	}

	src, err := buildDEM(scn)
	if err != nil {
		return err
	}
	p, err := buildPath(scn, src)
	if err != nil {
		return err
	}

	out := route.Simplify(p, tolerance)
	fmt.Printf("Dropped %d of %d points.\n\n", p.Len()-out.Len(), p.Len())
	printRouteSummary("Simplified route", out)

	return writeOutput(output, out)
}

func runServe(path string, port int) error {
	scn, report, err := loadAndValidate(path)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("scenario has validation errors; fix before serving")
	}

	src, err := buildDEM(scn)
	if err != nil {
		return err
	}

	srv := server.New(src, cost.DefaultRegistry(), optimize.DefaultRegistry(), buildObstacles(scn), port)
	return srv.Start()
}

func writeOutput(output string, p *route.Path) error {
	if output == "" {
		return nil
	}
	if err := geojson.WriteFile(output, p); err != nil {
		return fmt.Errorf("writing GeoJSON: %w", err)
	}
	fmt.Printf("\nWrote %s\n", output)
	return nil
}
