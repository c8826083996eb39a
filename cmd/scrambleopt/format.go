package main

import (
	"fmt"

	"github.com/nine-gs/ScrambleOpt/pkg/clearance"
	"github.com/nine-gs/ScrambleOpt/pkg/cost"
	"github.com/nine-gs/ScrambleOpt/pkg/route"
	"github.com/nine-gs/ScrambleOpt/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	printFindings("ERRORS", r.Errors)
	printFindings("WARNINGS", r.Warnings)

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, res := range r.Info {
			fmt.Printf("  [%s] %s\n", res.Level, res.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printFindings(title string, results []validation.Result) {
	if len(results) == 0 {
		return
	}
	fmt.Printf("%s (%d):\n", title, len(results))
	for _, res := range results {
		fmt.Printf("  [%s] %s\n", res.Level, res.Message)
		if res.SpecPath != "" {
			fmt.Printf("    -> %s = %v\n", res.SpecPath, res.ActualValue)
		}
		if res.Expected != "" {
			fmt.Printf("    expected: %s\n", res.Expected)
		}
		if res.ConflictWith != "" {
			fmt.Printf("    conflicts with: %s\n", res.ConflictWith)
		}
		for _, s := range res.Suggestions {
			fmt.Printf("    * %s\n", s)
		}
	}
	fmt.Println()
}

func printRouteSummary(label string, p *route.Path) {
	state := "locked endpoints"
	if !p.Locked {
		state = "free endpoints"
	}
	gain, loss := p.ElevationGainLoss()

	fmt.Printf("%s: %d points, %s\n", label, p.Len(), state)
	fmt.Printf("  Distance:        %10.2f\n", p.TotalDistance())
	fmt.Printf("  Elevation gain:  %10.2f\n", gain)
	fmt.Printf("  Elevation loss:  %10.2f\n", loss)
}

func printCostTable(p *route.Path, hours float64) error {
	registry := cost.DefaultRegistry()

	fmt.Printf("Cost Models (%.2fh budget)\n", hours)
	fmt.Println("==========================")
	fmt.Println()

	fmt.Printf("%-28s %12s\n", "Model", "Cost")
	fmt.Printf("%-28s %12s\n", "----------------------------", "------------")
	for _, name := range registry.Names() {
		fn, _ := registry.Get(name)
		v, err := fn(p, hours)
		if err != nil {
			return fmt.Errorf("evaluating %s: %w", name, err)
		}
		fmt.Printf("%-28s %12.3f\n", name, v)
	}
	return nil
}

func printViolations(violations []clearance.Violation) {
	fmt.Printf("CLEARANCE VIOLATIONS (%d):\n", len(violations))
	for _, v := range violations {
		fmt.Printf("  point %d lies inside %s\n", v.PointIndex, v.Obstacle)
	}
}
