package cmd

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bmssp/bmssp"
	"github.com/katalvlaran/bmssp/graph"
	"github.com/katalvlaran/bmssp/internal/baseline"
	"github.com/katalvlaran/bmssp/internal/graphgen"
	"github.com/katalvlaran/bmssp/internal/graphio"
	"github.com/katalvlaran/bmssp/internal/telemetry"
)

var (
	runInput   string
	runFormat  string
	runSource  int
	runVerify  bool
	runGenN    int
	runGenP    float64
	runGenSeed uint64
	runTrace   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute shortest distances from a single source",
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "Dataset file (edge-list or DIMACS); omit to generate a random graph")
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "edgelist", "Dataset format when --input is set: edgelist or dimacs")
	runCmd.Flags().IntVarP(&runSource, "source", "s", 0, "Source vertex")
	runCmd.Flags().BoolVar(&runVerify, "verify", false, "Cross-check against a classical Dijkstra baseline")
	runCmd.Flags().IntVar(&runGenN, "vertices", 100, "Vertex count for a generated graph (ignored with --input)")
	runCmd.Flags().Float64Var(&runGenP, "density", 0.05, "Edge probability for a generated graph (ignored with --input)")
	runCmd.Flags().Uint64Var(&runGenSeed, "seed", 1, "Random seed for a generated graph (ignored with --input)")
	runCmd.Flags().BoolVar(&runTrace, "trace", false, "Emit an OpenTelemetry trace of the query to stdout")
}

func runRun(cmd *cobra.Command, args []string) error {
	g, err := loadOrGenerateGraph()
	if err != nil {
		return err
	}

	source := graph.Vertex(runSource)
	engine := bmssp.New(g)

	var dist graph.Distances
	if runTrace || config.Trace {
		shutdown, err := telemetry.InitStdout()
		if err != nil {
			return fmt.Errorf("bmsspctl: starting tracer: %w", err)
		}
		defer func() { _ = shutdown(context.Background()) }()

		dist, err = telemetry.TracedCompute(context.Background(), engine, g, source)
		if err != nil {
			return fmt.Errorf("bmsspctl: computing distances: %w", err)
		}
	} else {
		dist, err = engine.Compute(source)
		if err != nil {
			return fmt.Errorf("bmsspctl: computing distances: %w", err)
		}
	}

	if runVerify {
		want, err := baseline.Dijkstra(g, source)
		if err != nil {
			return fmt.Errorf("bmsspctl: running baseline: %w", err)
		}
		if mismatch, v := firstMismatch(want, dist); mismatch {
			return fmt.Errorf("bmsspctl: BMSSP disagrees with Dijkstra at vertex %d: %v vs %v", v, want[v], dist[v])
		}
		fmt.Fprintln(os.Stderr, "bmsspctl: verified against Dijkstra baseline, no mismatch")
	}

	printDistances(dist)
	return nil
}

func loadOrGenerateGraph() (*graph.Graph, error) {
	if runInput == "" {
		return graphgen.Sparse(runGenN, runGenP, 20, runGenSeed)
	}

	f, err := os.Open(runInput)
	if err != nil {
		return nil, fmt.Errorf("bmsspctl: opening %s: %w", runInput, err)
	}
	defer f.Close()

	switch runFormat {
	case "edgelist":
		return graphio.ReadEdgeList(f)
	case "dimacs":
		return graphio.ReadDIMACS(f)
	default:
		return nil, fmt.Errorf("bmsspctl: unknown format %q (valid: edgelist, dimacs)", runFormat)
	}
}

func firstMismatch(want, got graph.Distances) (bool, int) {
	for v := range want {
		wInf := math.IsInf(float64(want[v]), 1)
		gInf := math.IsInf(float64(got[v]), 1)
		if wInf != gInf {
			return true, v
		}
		if !wInf && math.Abs(float64(want[v]-got[v])) > 1e-3 {
			return true, v
		}
	}
	return false, -1
}

func printDistances(dist graph.Distances) {
	for v, d := range dist {
		if math.IsInf(float64(d), 1) {
			fmt.Printf("%d\tunreachable\n", v)
			continue
		}
		fmt.Printf("%d\t%v\n", v, d)
	}
}
