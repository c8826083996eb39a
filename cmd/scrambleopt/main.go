package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nine-gs/ScrambleOpt/pkg/route"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scrambleopt",
		Short: "Terrain-aware route optimization",
		Long: `ScrambleOpt evaluates and improves routes over elevation rasters.

A scenario file names the terrain, the route, the cost model, and the
optimizer configuration. Subcommands load the scenario and run one stage
of the pipeline against it.`,
	}

	rootCmd.AddCommand(optimizeCmd())
	rootCmd.AddCommand(costCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(resegmentCmd())
	rootCmd.AddCommand(simplifyCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func optimizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "optimize [scenario.yaml]",
		Short: "Run the local search and report the best route found",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runOptimize(args[0])
		},
	}
}

func costCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cost [scenario.yaml]",
		Short: "Evaluate every registered cost model on the scenario route",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCost(args[0])
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scenario.yaml]",
		Short: "Check a scenario without running the optimizer",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func resegmentCmd() *cobra.Command {
	var target int
	var output string

	cmd := &cobra.Command{
		Use:   "resegment [scenario.yaml]",
		Short: "Grow the scenario route to a target point count",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runResegment(args[0], target, output)
		},
	}

	cmd.Flags().IntVarP(&target, "target", "t", 0, "desired point count")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result as GeoJSON")
	return cmd
}

func simplifyCmd() *cobra.Command {
	var tolerance float64
	var output string

	cmd := &cobra.Command{
		Use:   "simplify [scenario.yaml]",
		Short: "Drop collinear points from the scenario route",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSimplify(args[0], tolerance, output)
		},
	}

	cmd.Flags().Float64Var(&tolerance, "tolerance", route.DefaultSimplifyTolerance, "collinearity tolerance")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result as GeoJSON")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [scenario.yaml]",
		Short: "Host the engine over HTTP using the scenario's terrain",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runServe(args[0], port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP server port")
	return cmd
}
