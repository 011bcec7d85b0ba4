package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bmssp/bmssp"
	"github.com/katalvlaran/bmssp/internal/baseline"
	"github.com/katalvlaran/bmssp/internal/graphgen"
)

var (
	benchN      int
	benchP      float64
	benchSeed   uint64
	benchRepeat int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare BMSSP and Dijkstra wall-clock time on a synthetic graph",
	RunE:  runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVar(&benchN, "vertices", 2000, "Vertex count of the generated graph")
	benchCmd.Flags().Float64Var(&benchP, "density", 0.01, "Edge probability of the generated graph")
	benchCmd.Flags().Uint64Var(&benchSeed, "seed", 1, "Random seed")
	benchCmd.Flags().IntVar(&benchRepeat, "repeat", 5, "Number of timed repetitions")
}

func runBench(cmd *cobra.Command, args []string) error {
	g, err := graphgen.Sparse(benchN, benchP, 20, benchSeed)
	if err != nil {
		return fmt.Errorf("bmsspctl: generating graph: %w", err)
	}

	engine := bmssp.New(g)

	var bmsspTotal, dijkstraTotal time.Duration
	for i := 0; i < benchRepeat; i++ {
		start := time.Now()
		if _, err := engine.Compute(0); err != nil {
			return fmt.Errorf("bmsspctl: computing distances: %w", err)
		}
		bmsspTotal += time.Since(start)

		start = time.Now()
		if _, err := baseline.Dijkstra(g, 0); err != nil {
			return fmt.Errorf("bmsspctl: running baseline: %w", err)
		}
		dijkstraTotal += time.Since(start)
	}

	fmt.Printf("vertices=%d density=%v repeat=%d\n", benchN, benchP, benchRepeat)
	fmt.Printf("bmssp:    avg=%v total=%v\n", bmsspTotal/time.Duration(benchRepeat), bmsspTotal)
	fmt.Printf("dijkstra: avg=%v total=%v\n", dijkstraTotal/time.Duration(benchRepeat), dijkstraTotal)

	return nil
}
