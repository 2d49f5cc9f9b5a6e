// Command planner loads a production-and-distribution planning dataset from
// CSV files, validates it, builds and solves the multi-echelon MIP, and
// reports the extracted solution.
package main

import (
	"fmt"
	"os"

	"github.com/sverzijl/planner/cmd/planner/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
