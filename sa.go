package timetable

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SA is a Simulated Annealing solver: a temperature-scheduled probabilistic
// acceptance loop over random swap/relocate moves, grounded on
// _examples/original_source's simulated_annealing.py.
type SA struct {
	problem *Problem
	config  SAConfig
	rng     *rand.Rand
	logger  *zap.Logger

	schedule Schedule
	idx      *SlotIndex
	eval     *Evaluator

	initialAllocation map[string][]SlotAssignment
	result            SAResult
}

// SAOption configures an SA solver at construction time.
type SAOption func(*SA)

// WithSAConfig overrides the default InitialTemp/Decay.
func WithSAConfig(cfg SAConfig) SAOption {
	return func(s *SA) { s.config = cfg }
}

// WithSARand overrides the solver's RNG; useful for deterministic tests.
func WithSARand(rng *rand.Rand) SAOption {
	return func(s *SA) { s.rng = rng }
}

// WithSALogger injects a structured logger; nil falls back to a no-op.
func WithSALogger(logger *zap.Logger) SAOption {
	return func(s *SA) { s.logger = logger }
}

// NewSA validates problem and constructs an SA solver ready for Search.
func NewSA(problem *Problem, opts ...SAOption) (*SA, error) {
	if err := problem.Validate(); err != nil {
		return nil, err
	}
	s := &SA{
		problem: problem,
		config:  DefaultSAConfig(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = nopLogger(s.logger)

	s.schedule = Seed(problem, s.rng)
	s.idx = BuildSlotIndex(problem, s.schedule)
	s.eval = NewEvaluator(problem)
	s.initialAllocation = roomAllocation(s.schedule)
	return s, nil
}

// Search runs the annealing loop to completion: while temperature > 1,
// propose a random move, accept or reject it by the Metropolis criterion,
// and cool the temperature by Decay.
func (s *SA) Search() {
	start := time.Now()
	runID := uuid.NewString()
	s.logger.Info("sa search start",
		zap.String("run_id", runID),
		zap.Int("classes", len(s.problem.Classes)),
		zap.Float64("initial_temp", s.config.InitialTemp),
		zap.Float64("decay", s.config.Decay))

	temperature := s.config.InitialTemp
	current := s.eval.Evaluate(s.schedule)

	objectives := []float64{current}
	deltas := []float64{}
	temps := []float64{}
	var stuck int
	var iteration int

	for temperature > 1 {
		move := s.proposeMove()
		move.Apply(s.schedule, s.idx)
		candidate := s.eval.Evaluate(s.schedule)
		delta := candidate - current

		accept := delta < 0
		if !accept {
			if math.Exp(-delta/temperature) > s.rng.Float64() {
				accept = true
			}
		}

		if accept {
			current = candidate
		} else {
			move.Inverse().Apply(s.schedule, s.idx)
			stuck++
		}

		iteration++
		objectives = append(objectives, current)
		deltas = append(deltas, delta)
		temps = append(temps, temperature)
		temperature *= s.config.Decay
	}

	s.result = SAResult{
		Result: Result{
			RunID:                  runID,
			RoomAllocationInitial:  s.initialAllocation,
			RoomAllocation:         roomAllocation(s.schedule),
			SearchTime:             time.Since(start),
			Iteration:              iteration,
			ObjectiveOverIteration: objectives,
		},
		LocalOptimaStuckCount:    stuck,
		DeltaEnergyOverIteration: deltas,
		TemperatureOverIteration: temps,
	}

	s.logger.Info("sa search done",
		zap.String("run_id", runID),
		zap.Int("iterations", iteration),
		zap.Float64("final_objective", current),
		zap.Duration("search_time", s.result.SearchTime))
}

// proposeMove picks a random swap with probability 0.5, forced to 1.0 when
// the schedule has no empty slots (relocate would have no target).
func (s *SA) proposeMove() Move {
	if len(s.idx.Empty) == 0 || s.rng.Float64() < 0.5 {
		m := RandomSwap(s.problem, s.schedule, s.rng)
		return m
	}
	return RandomRelocate(s.problem, s.schedule, s.idx, s.rng)
}

// Result returns the outcome of the completed run. Calling it before
// Search returns a zero-value SAResult, with nil room allocations.
func (s *SA) Result() SAResult {
	return s.result
}
