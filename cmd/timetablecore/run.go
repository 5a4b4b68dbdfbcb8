package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jadwal-engine/coursetimetable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCommand(logger *zap.Logger) *cobra.Command {
	var (
		solverName  string
		problemFile string
		configFile  string
		seed        int64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a solver against a problem and print the resulting schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			problem, err := loadProblem(problemFile, seed)
			if err != nil {
				return fmt.Errorf("loading problem: %w", err)
			}

			cfg, err := loadConfig(configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			rng := newRNG(seed)
			return runSolver(solverName, problem, cfg, rng, logger)
		},
	}

	cmd.Flags().StringVar(&solverName, "solver", "sa", "solver to run: sa, hc-steepest, hc-stochastic, hc-sideways, hc-restart, ga")
	cmd.Flags().StringVar(&problemFile, "problem", "", "problem JSON file (default: generate a small random problem)")
	cmd.Flags().StringVar(&configFile, "config", "", "optional solver parameters file (YAML or JSON)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = derive from wall clock)")
	return cmd
}

func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(seed))
}

func loadProblem(path string, seed int64) (*timetable.Problem, error) {
	if path == "" {
		rng := newRNG(seed)
		classes, rooms, students := generateProblem(rng, 6, 3, 20, 3)
		return timetable.NewProblem(classes, rooms, students)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readProblemDoc(f)
}

func runSolver(name string, problem *timetable.Problem, cfg timetable.Config, rng *rand.Rand, logger *zap.Logger) error {
	roomCodes := problem.RoomCodes()

	switch name {
	case "sa":
		solver, err := timetable.NewSA(problem,
			timetable.WithSAConfig(cfg.SA),
			timetable.WithSARand(rng),
			timetable.WithSALogger(logger))
		if err != nil {
			return err
		}
		solver.Search()
		result := solver.Result()
		printSummary("sa", result.Iteration, result.ObjectiveOverIteration, result.SearchTime.String())
		printGrid(roomCodes, result.RoomAllocation)

	case "hc-steepest":
		solver, err := timetable.NewHCSteepestAscent(problem,
			timetable.WithHCRand(rng),
			timetable.WithHCLogger(logger))
		if err != nil {
			return err
		}
		solver.Search()
		result := solver.Result()
		printSummary("hc-steepest", result.Iteration, result.ObjectiveOverIteration, result.SearchTime.String())
		printGrid(roomCodes, result.RoomAllocation)

	case "hc-stochastic":
		solver, err := timetable.NewHCStochastic(problem,
			timetable.WithHCRand(rng),
			timetable.WithHCLogger(logger))
		if err != nil {
			return err
		}
		solver.Search()
		result := solver.Result()
		printSummary("hc-stochastic", result.Iteration, result.ObjectiveOverIteration, result.SearchTime.String())
		printGrid(roomCodes, result.RoomAllocation)

	case "hc-sideways":
		solver, err := timetable.NewHCSideways(problem,
			timetable.WithHCRand(rng),
			timetable.WithHCLogger(logger))
		if err != nil {
			return err
		}
		solver.WithMaxSideways(cfg.HillClimbing.MaxSideways)
		solver.Search()
		result := solver.Result()
		printSummary("hc-sideways", result.Iteration, result.ObjectiveOverIteration, result.SearchTime.String())
		printGrid(roomCodes, result.RoomAllocation)

	case "hc-restart":
		solver, err := timetable.NewHCRandomRestart(problem,
			timetable.WithHCRand(rng),
			timetable.WithHCLogger(logger))
		if err != nil {
			return err
		}
		solver.WithMaxRestart(cfg.HillClimbing.MaxRestart)
		solver.WithMaxIterationsPerRestart(cfg.HillClimbing.MaxIterationsPerRestart)
		solver.Search()
		result := solver.Result()
		printSummary("hc-restart", result.Iteration, result.ObjectiveOverIteration, result.SearchTime.String())
		printGrid(roomCodes, result.RoomAllocation)

	case "ga":
		solver, err := timetable.NewGA(problem,
			timetable.WithGAParams(cfg.GA),
			timetable.WithGARand(rng),
			timetable.WithGALogger(logger))
		if err != nil {
			return err
		}
		solver.Search()
		result := solver.Result()
		printSummary("ga", result.Iteration, result.ObjectiveBestOverIteration, result.SearchTime.String())
		printGrid(roomCodes, result.RoomAllocation)

	default:
		return fmt.Errorf("unknown solver %q", name)
	}

	return nil
}
