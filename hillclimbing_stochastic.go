package timetable

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HCStochastic is the Stochastic Hill-Climbing variant: each iteration
// tries a bounded number of random moves and accepts the first one found
// that strictly improves the objective, rather than searching for the
// single best one.
type HCStochastic struct {
	core   *hcCore
	result HCResult
}

// NewHCStochastic validates problem and constructs a Stochastic
// Hill-Climbing solver ready for Search.
func NewHCStochastic(problem *Problem, opts ...HCOption) (*HCStochastic, error) {
	core, err := buildHCCore(problem, opts)
	if err != nil {
		return nil, err
	}
	return &HCStochastic{core: core}, nil
}

// attemptBudget returns min(50, 4·classes), per §4.7.
func (h *HCStochastic) attemptBudget() int {
	return min(50, 4*len(h.core.problem.Classes))
}

// Search runs Stochastic Hill-Climbing to its local optimum: it stops the
// first iteration in which no attempt improves the objective.
func (h *HCStochastic) Search() {
	start := time.Now()
	runID := uuid.NewString()
	core := h.core
	core.logger.Info("hc-stochastic search start",
		zap.String("run_id", runID),
		zap.Int("classes", len(core.problem.Classes)))

	current := core.eval.Evaluate(core.schedule)
	objectives := []float64{current}
	var iteration int
	attempts := h.attemptBudget()

	for {
		improved := false
		for attempt := 0; attempt < attempts; attempt++ {
			var move Move
			if len(core.idx.Empty) == 0 || core.rng.Float64() < 0.5 {
				move = RandomSwap(core.problem, core.schedule, core.rng)
			} else {
				move = RandomRelocate(core.problem, core.schedule, core.idx, core.rng)
			}

			move.Apply(core.schedule, core.idx)
			candidate := core.eval.Evaluate(core.schedule)
			delta := candidate - current

			if delta < 0 {
				current = candidate
				improved = true
				break
			}
			move.Inverse().Apply(core.schedule, core.idx)
		}

		if !improved {
			break
		}
		iteration++
		objectives = append(objectives, current)
	}

	h.result = HCResult{
		Result: Result{
			RunID:                  runID,
			RoomAllocationInitial:  core.initialAllocation,
			RoomAllocation:         roomAllocation(core.schedule),
			SearchTime:             time.Since(start),
			Iteration:              iteration,
			ObjectiveOverIteration: objectives,
		},
		LocalOptimaIteration: iteration,
	}

	core.logger.Info("hc-stochastic search done",
		zap.String("run_id", runID),
		zap.Int("iterations", iteration),
		zap.Float64("final_objective", current),
		zap.Duration("search_time", h.result.SearchTime))
}

// Result returns the outcome of the completed run.
func (h *HCStochastic) Result() HCResult {
	return h.result
}
