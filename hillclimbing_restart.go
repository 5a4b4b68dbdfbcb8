package timetable

import (
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HCRandomRestart runs independent Steepest-Ascent trials from fresh
// random seeds and reports the best one, trading per-trial local-optimum
// risk for coverage of the search space.
type HCRandomRestart struct {
	core                    *hcCore
	maxRestart              int
	maxIterationsPerRestart int
	result                  HCResult
}

// NewHCRandomRestart validates problem and constructs a Random-Restart
// solver ready for Search. MaxRestart defaults to 10 and
// MaxIterationsPerRestart to 0 (unbounded), per §4.7.
func NewHCRandomRestart(problem *Problem, opts ...HCOption) (*HCRandomRestart, error) {
	core, err := buildHCCore(problem, opts)
	if err != nil {
		return nil, err
	}
	defaults := DefaultHillClimbingConfig()
	return &HCRandomRestart{
		core:                    core,
		maxRestart:              defaults.MaxRestart,
		maxIterationsPerRestart: defaults.MaxIterationsPerRestart,
	}, nil
}

// WithMaxRestart overrides the default trial count.
func (h *HCRandomRestart) WithMaxRestart(n int) *HCRandomRestart {
	h.maxRestart = n
	return h
}

// WithMaxIterationsPerRestart overrides the default per-trial iteration
// cap; 0 means unbounded.
func (h *HCRandomRestart) WithMaxIterationsPerRestart(n int) *HCRandomRestart {
	h.maxIterationsPerRestart = n
	return h
}

// Search runs up to MaxRestart independent Steepest-Ascent trials, each
// from a fresh Seed of the same Problem, and keeps the best trial's full
// trace. Exits early if any trial reaches objective 0.
func (h *HCRandomRestart) Search() {
	start := time.Now()
	runID := uuid.NewString()
	core := h.core
	core.logger.Info("hc-restart search start",
		zap.String("run_id", runID),
		zap.Int("classes", len(core.problem.Classes)),
		zap.Int("max_restart", h.maxRestart))

	var bestObjectives []float64
	var bestIteration int
	bestFinal := math.Inf(1)
	var bestSchedule Schedule
	var bestInitialAllocation map[string][]SlotAssignment
	iterationsPerRestart := make([]int, 0, h.maxRestart)

	for trial := 0; trial < h.maxRestart; trial++ {
		schedule := Seed(core.problem, core.rng)
		initialAllocation := roomAllocation(schedule)
		idx := BuildSlotIndex(core.problem, schedule)
		current := core.eval.Evaluate(schedule)
		objectives := []float64{current}
		var iteration int

		trialCore := &hcCore{
			problem:  core.problem,
			rng:      core.rng,
			logger:   core.logger,
			schedule: schedule,
			idx:      idx,
			eval:     core.eval,
		}

		for h.maxIterationsPerRestart == 0 || iteration < h.maxIterationsPerRestart {
			scan := trialCore.scanCandidates(current)
			if !scan.hasBest {
				break
			}
			scan.bestMove.Apply(schedule, idx)
			current += scan.bestDelta
			iteration++
			objectives = append(objectives, current)
		}

		iterationsPerRestart = append(iterationsPerRestart, iteration)
		core.logger.Debug("hc-restart trial done",
			zap.Int("trial", trial),
			zap.Int("iterations", iteration),
			zap.Float64("objective", current))

		if current < bestFinal {
			bestFinal = current
			bestObjectives = objectives
			bestIteration = iteration
			bestSchedule = schedule
			bestInitialAllocation = initialAllocation
		}
		if bestFinal == 0 {
			break
		}
	}

	h.result = HCResult{
		Result: Result{
			RunID:                  runID,
			RoomAllocationInitial:  bestInitialAllocation,
			RoomAllocation:         roomAllocation(bestSchedule),
			SearchTime:             time.Since(start),
			Iteration:              bestIteration,
			ObjectiveOverIteration: bestObjectives,
		},
		LocalOptimaIteration: bestIteration,
		RestartCount:         len(iterationsPerRestart),
		IterationsPerRestart: iterationsPerRestart,
	}

	core.logger.Info("hc-restart search done",
		zap.String("run_id", runID),
		zap.Int("trials", len(iterationsPerRestart)),
		zap.Float64("final_objective", bestFinal),
		zap.Duration("search_time", h.result.SearchTime))
}

// Result returns the outcome of the completed run.
func (h *HCRandomRestart) Result() HCResult {
	return h.result
}
