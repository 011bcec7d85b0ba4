// Command bmsspctl runs BMSSP single-source shortest-path queries against
// datasets on disk or synthetic random graphs, from the command line.
package main

import "github.com/katalvlaran/bmssp/cmd/bmsspctl/cmd"

func main() {
	cmd.Execute()
}
