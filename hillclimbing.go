package timetable

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// hcCore bundles the state shared by every Hill-Climbing variant: the
// problem, a seeded schedule/index/evaluator triple, the RNG, and the
// logger. Each variant holds one and adds its own control flow, grounded
// on _examples/original_source's hill_climbing.py.
type hcCore struct {
	problem *Problem
	rng     *rand.Rand
	logger  *zap.Logger

	schedule Schedule
	idx      *SlotIndex
	eval     *Evaluator

	initialAllocation map[string][]SlotAssignment
}

// candidateBudget returns the swap and relocate candidate counts per §4.7:
// min(classes², 50) swaps, plus min(classes·|Empty|, 50) relocates when the
// schedule has empty slots.
func (c *hcCore) candidateBudget() (swapN, relocateN int) {
	classes := len(c.problem.Classes)
	swapN = min(classes*classes, 50)
	if len(c.idx.Empty) > 0 {
		relocateN = min(classes*len(c.idx.Empty), 50)
	}
	return swapN, relocateN
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// bestCandidateResult describes the outcome of scanning one iteration's
// candidate moves: the best strictly-improving move found (if any) and,
// separately, the first sideways (Δ == 0) move found, for variants that
// use it.
type bestCandidateResult struct {
	bestMove     Move
	bestDelta    float64
	hasBest      bool
	sidewaysMove Move
	hasSideways  bool
}

// scanCandidates applies each candidate move, measures its delta against
// current, reverts it, and tracks the best strictly-improving move and the
// first sideways move encountered — the shared core of Steepest-Ascent and
// Sideways-Move.
func (c *hcCore) scanCandidates(current float64) bestCandidateResult {
	swapN, relocateN := c.candidateBudget()
	result := bestCandidateResult{bestDelta: 0}

	tryMove := func(m Move) {
		m.Apply(c.schedule, c.idx)
		candidate := c.eval.Evaluate(c.schedule)
		delta := candidate - current
		m.Inverse().Apply(c.schedule, c.idx)

		if delta < result.bestDelta {
			result.bestDelta = delta
			result.bestMove = m
			result.hasBest = true
		} else if delta == 0 && !result.hasSideways {
			result.sidewaysMove = m
			result.hasSideways = true
		}
	}

	for i := 0; i < swapN; i++ {
		tryMove(RandomSwap(c.problem, c.schedule, c.rng))
	}
	for i := 0; i < relocateN; i++ {
		tryMove(RandomRelocate(c.problem, c.schedule, c.idx, c.rng))
	}

	return result
}

// HCSteepestAscent is the Steepest-Ascent Hill-Climbing variant: each
// iteration samples a bounded candidate set and applies only the single
// best strictly-improving move, terminating at the first local optimum.
type HCSteepestAscent struct {
	core   *hcCore
	result HCResult
}

// HCOption configures any Hill-Climbing variant at construction time.
type HCOption func(*hcCore)

// WithHCRand overrides the solver's RNG.
func WithHCRand(rng *rand.Rand) HCOption {
	return func(c *hcCore) { c.rng = rng }
}

// WithHCLogger injects a structured logger; nil falls back to a no-op.
func WithHCLogger(logger *zap.Logger) HCOption {
	return func(c *hcCore) { c.logger = logger }
}

// NewHCSteepestAscent validates problem and constructs a Steepest-Ascent
// solver ready for Search.
func NewHCSteepestAscent(problem *Problem, opts ...HCOption) (*HCSteepestAscent, error) {
	core, err := buildHCCore(problem, opts)
	if err != nil {
		return nil, err
	}
	return &HCSteepestAscent{core: core}, nil
}

// buildHCCore applies options before seeding, so WithHCRand is honored by
// the initial Seed call.
func buildHCCore(problem *Problem, opts []HCOption) (*hcCore, error) {
	if err := problem.Validate(); err != nil {
		return nil, err
	}
	core := &hcCore{problem: problem}
	for _, opt := range opts {
		opt(core)
	}
	if core.rng == nil {
		core.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	core.logger = nopLogger(core.logger)
	core.schedule = Seed(problem, core.rng)
	core.idx = BuildSlotIndex(problem, core.schedule)
	core.eval = NewEvaluator(problem)
	core.initialAllocation = roomAllocation(core.schedule)
	return core, nil
}

// Search runs Steepest-Ascent to its local optimum.
func (h *HCSteepestAscent) Search() {
	start := time.Now()
	runID := uuid.NewString()
	core := h.core
	core.logger.Info("hc-steepest search start",
		zap.String("run_id", runID),
		zap.Int("classes", len(core.problem.Classes)))

	current := core.eval.Evaluate(core.schedule)
	objectives := []float64{current}
	var iteration int

	for {
		scan := core.scanCandidates(current)
		if !scan.hasBest {
			break
		}
		scan.bestMove.Apply(core.schedule, core.idx)
		current += scan.bestDelta
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

	core.logger.Info("hc-steepest search done",
		zap.String("run_id", runID),
		zap.Int("iterations", iteration),
		zap.Float64("final_objective", current),
		zap.Duration("search_time", h.result.SearchTime))
}

// Result returns the outcome of the completed run.
func (h *HCSteepestAscent) Result() HCResult {
	return h.result
}
