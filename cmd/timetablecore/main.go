// Command timetablecore is a demonstration driver for the timetable
// package: it can generate a small random problem, run any of the library's
// solvers against it, and print the resulting schedule as a room-by-time
// grid plus a textual run summary. It is the only place in this repository
// that touches flags, files, or stdout — the library itself stays side
// effect free.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	root := &cobra.Command{
		Use:   "timetablecore",
		Short: "Course timetable metaheuristic search demonstration",
		Long: "A demonstration CLI for the timetable package: generate problems,\n" +
			"run Simulated Annealing, Hill-Climbing, or Genetic Algorithm\n" +
			"solvers, and print the resulting schedules.",
	}

	root.AddCommand(newGenerateCommand())
	root.AddCommand(newRunCommand(logger))

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
