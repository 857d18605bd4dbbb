package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type opts struct {
	// inputs
	paramsPath string
	set        []string

	// model selection
	legacyVF bool

	// outputs
	jsonOut bool
	outPath string

	// sweep
	scenarioPath string
	workers      int
	metricsAddr  string

	// breakeven
	searchLo  float64
	searchHi  float64
	tolerance float64
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "orbitalcost",
		Short: "Techno-economic comparison of orbital vs gas-turbine datacenters",
		Long: `orbitalcost evaluates a deterministic cost and thermal model for two
competing datacenter architectures: a fleet of solar-powered compute
satellites in sun-synchronous orbit, and a terrestrial gas-turbine-powered
facility delivering the same IT power.

Every run is a pure function of a parameter set plus a constant set; there is
no state between invocations.

Examples:
  orbitalcost compare
  orbitalcost compare --params params.yaml --set launchCostPerKg=150 --json
  orbitalcost breakeven --hi 5000
  orbitalcost sweep --scenario sweep.yaml --out points.json`,
	}

	root.PersistentFlags().StringVar(&o.paramsPath, "params", "", "parameter document (JSON/YAML) merged over defaults")
	root.PersistentFlags().StringArrayVar(&o.set, "set", nil, "override a single parameter, e.g. --set launchCostPerKg=150 (repeatable)")
	root.PersistentFlags().BoolVar(&o.legacyVF, "legacy-view-factor", false, "use the historical linear view-factor heuristic instead of the geometric model")
	root.PersistentFlags().BoolVar(&o.jsonOut, "json", false, "emit results as JSON instead of tables")

	compare := &cobra.Command{
		Use:   "compare",
		Short: "Evaluate both architectures and the thermal balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(o)
		},
	}

	thermalCmd := &cobra.Command{
		Use:   "thermal",
		Short: "Evaluate the bifacial panel thermal equilibrium",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThermal(o)
		},
	}

	breakevenCmd := &cobra.Command{
		Use:   "breakeven",
		Short: "Find the launch cost at which orbital matches terrestrial",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBreakeven(o)
		},
	}
	breakevenCmd.Flags().Float64Var(&o.searchLo, "lo", 0, "lower search bound ($/kg)")
	breakevenCmd.Flags().Float64Var(&o.searchHi, "hi", 10000, "upper search bound ($/kg)")
	breakevenCmd.Flags().Float64Var(&o.tolerance, "tol", 1, "convergence tolerance ($/kg)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate both models over a parameter grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd.Context(), o)
		},
	}
	sweepCmd.Flags().StringVar(&o.scenarioPath, "scenario", "", "YAML sweep scenario file (required)")
	sweepCmd.Flags().StringVar(&o.outPath, "out", "", "write points as JSON to this file instead of stdout")
	sweepCmd.Flags().IntVar(&o.workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	sweepCmd.Flags().StringVar(&o.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while the sweep runs")
	_ = sweepCmd.MarkFlagRequired("scenario")

	root.AddCommand(compare, thermalCmd, breakevenCmd, sweepCmd)

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
