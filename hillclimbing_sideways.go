package timetable

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HCSideways is the Sideways-Move Hill-Climbing variant: like
// Steepest-Ascent, but when no strictly-improving candidate exists it will
// take a Δ == 0 move to escape a plateau, up to MaxSideways consecutive
// times.
type HCSideways struct {
	core        *hcCore
	maxSideways int
	result      HCResult
}

// NewHCSideways validates problem and constructs a Sideways-Move solver
// ready for Search. MaxSideways defaults to 50 (§4.7); override via
// WithMaxSideways.
func NewHCSideways(problem *Problem, opts ...HCOption) (*HCSideways, error) {
	core, err := buildHCCore(problem, opts)
	if err != nil {
		return nil, err
	}
	return &HCSideways{core: core, maxSideways: DefaultHillClimbingConfig().MaxSideways}, nil
}

// WithMaxSideways overrides the default sideways-streak limit. It must be
// applied after construction since it is specific to this variant.
func (h *HCSideways) WithMaxSideways(n int) *HCSideways {
	h.maxSideways = n
	return h
}

// Search runs Sideways-Move Hill-Climbing until no move is accepted or the
// sideways streak reaches MaxSideways.
func (h *HCSideways) Search() {
	start := time.Now()
	runID := uuid.NewString()
	core := h.core
	core.logger.Info("hc-sideways search start",
		zap.String("run_id", runID),
		zap.Int("classes", len(core.problem.Classes)),
		zap.Int("max_sideways", h.maxSideways))

	current := core.eval.Evaluate(core.schedule)
	objectives := []float64{current}
	var iteration, sidewaysStreak, sidewaysMoves int

loop:
	for {
		scan := core.scanCandidates(current)

		switch {
		case scan.hasBest:
			scan.bestMove.Apply(core.schedule, core.idx)
			current += scan.bestDelta
			sidewaysStreak = 0
		case scan.hasSideways && sidewaysStreak < h.maxSideways:
			scan.sidewaysMove.Apply(core.schedule, core.idx)
			sidewaysStreak++
			sidewaysMoves++
		default:
			break loop
		}

		iteration++
		objectives = append(objectives, current)

		if sidewaysStreak > 0 && sidewaysStreak >= h.maxSideways {
			break
		}
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
		SidewaysMoves:        sidewaysMoves,
		MaxSideways:          h.maxSideways,
	}

	core.logger.Info("hc-sideways search done",
		zap.String("run_id", runID),
		zap.Int("iterations", iteration),
		zap.Int("sideways_moves", sidewaysMoves),
		zap.Float64("final_objective", current),
		zap.Duration("search_time", h.result.SearchTime))
}

// Result returns the outcome of the completed run.
func (h *HCSideways) Result() HCResult {
	return h.result
}
