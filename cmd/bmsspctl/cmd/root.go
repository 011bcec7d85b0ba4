package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	config  *cliConfig
)

// rootCmd is the base command for bmsspctl.
var rootCmd = &cobra.Command{
	Use:   "bmsspctl",
	Short: "Run bounded multi-source shortest-path queries",
	Long: `bmsspctl runs single-source shortest-path queries using the BMSSP
engine against datasets loaded from disk (edge-list or DIMACS format) or
synthetic random graphs, and can compare results against a classical
Dijkstra baseline.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		config = cfg
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./bmsspctl.yaml)")

	binName := filepath.Base(os.Args[0])
	rootCmd.Example = fmt.Sprintf(`  # Run a query against an edge-list file
  %s run --input graph.edges --format edgelist --source 0

  # Run a query against a DIMACS dataset and verify against Dijkstra
  %s run --input USA-road.gr --format dimacs --source 0 --verify

  # Benchmark BMSSP against Dijkstra on a synthetic random graph
  %s bench --vertices 5000 --density 0.002`,
		binName, binName, binName)
}
