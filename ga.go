package timetable

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// gaIndividual owns an independent schedule and its cached objective. The
// GA works directly on schedules and does not maintain a SlotIndex (see
// SPEC_FULL.md §9, "index vs. recompute").
type gaIndividual struct {
	schedule  Schedule
	objective float64
}

// GA is a population-based solver with tournament selection, uniform
// per-class crossover, and two mutation operators, grounded on
// _examples/original_source's genetic_algorithm.py.
type GA struct {
	problem *Problem
	params  GAParams
	rng     *rand.Rand
	logger  *zap.Logger
	eval    *Evaluator

	initialAllocation map[string][]SlotAssignment
	result            GAResult
}

// GAOption configures a GA solver at construction time.
type GAOption func(*GA)

// WithGAParams overrides the default population/generation parameters.
func WithGAParams(params GAParams) GAOption {
	return func(g *GA) { g.params = params }
}

// WithGARand overrides the solver's RNG.
func WithGARand(rng *rand.Rand) GAOption {
	return func(g *GA) { g.rng = rng }
}

// WithGALogger injects a structured logger; nil falls back to a no-op.
func WithGALogger(logger *zap.Logger) GAOption {
	return func(g *GA) { g.logger = logger }
}

// NewGA validates problem and constructs a GA solver ready for Search.
func NewGA(problem *Problem, opts ...GAOption) (*GA, error) {
	if err := problem.Validate(); err != nil {
		return nil, err
	}
	g := &GA{
		problem: problem,
		params:  DefaultGAParams(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = nopLogger(g.logger)
	g.params.Elitism = clampElitism(g.params.Elitism, g.params.PopulationSize)
	g.eval = NewEvaluator(problem)
	return g, nil
}

func (g *GA) newRandomIndividual() gaIndividual {
	schedule := Seed(g.problem, g.rng)
	return gaIndividual{schedule: schedule, objective: g.eval.Evaluate(schedule)}
}

// tournamentSelect samples TournamentK distinct individuals (by index) and
// returns the one with the lowest objective.
func (g *GA) tournamentSelect(population []gaIndividual) gaIndividual {
	k := g.params.TournamentK
	if k > len(population) {
		k = len(population)
	}
	chosen := make(map[int]bool, k)
	best := -1
	for len(chosen) < k {
		i := g.rng.Intn(len(population))
		if chosen[i] {
			continue
		}
		chosen[i] = true
		if best == -1 || population[i].objective < population[best].objective {
			best = i
		}
	}
	return population[best]
}

// crossover performs uniform per-class crossover: for each class
// independently, a fair coin decides whether child1/child2 inherit
// parent1/parent2's slot sequence for that class, or the swapped pair.
func (g *GA) crossover(parent1, parent2 gaIndividual) (child1, child2 Schedule) {
	child1 = make(Schedule, len(g.problem.Classes))
	child2 = make(Schedule, len(g.problem.Classes))
	for _, class := range g.problem.Classes {
		seq1 := parent1.schedule[class.Code]
		seq2 := parent2.schedule[class.Code]
		if g.rng.Intn(2) == 0 {
			child1[class.Code] = cloneSlots(seq1)
			child2[class.Code] = cloneSlots(seq2)
		} else {
			child1[class.Code] = cloneSlots(seq2)
			child2[class.Code] = cloneSlots(seq1)
		}
	}
	return child1, child2
}

func cloneSlots(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

// mutate applies one of the two mutation operators with probability
// MutationRate: a fair coin then picks between a swap-style mutation
// (two classes, one meeting each, exchanged) and a relocate-style
// mutation (one class, one meeting, moved to a currently-empty slot).
func (g *GA) mutate(schedule Schedule) {
	if g.rng.Float64() >= g.params.MutationRate {
		return
	}

	codes := classCodes(g.problem)
	if g.rng.Intn(2) == 0 {
		c1 := codes[g.rng.Intn(len(codes))]
		c2 := codes[g.rng.Intn(len(codes))]
		i1 := g.rng.Intn(len(schedule[c1]))
		i2 := g.rng.Intn(len(schedule[c2]))
		schedule[c1][i1], schedule[c2][i2] = schedule[c2][i2], schedule[c1][i1]
		return
	}

	c := codes[g.rng.Intn(len(codes))]
	empty := g.emptySlotsOf(schedule)
	if len(empty) == 0 {
		return
	}
	i := g.rng.Intn(len(schedule[c]))
	schedule[c][i] = empty[g.rng.Intn(len(empty))]
}

// emptySlotsOf recomputes the empty-slot set directly from schedule, since
// the GA does not maintain a persistent SlotIndex.
func (g *GA) emptySlotsOf(schedule Schedule) []Slot {
	occupied := make(map[Slot]struct{})
	for _, slots := range schedule {
		for _, s := range slots {
			occupied[s] = struct{}{}
		}
	}
	universe := Universe(g.problem.RoomCodes())
	empty := make([]Slot, 0, len(universe)-len(occupied))
	for _, s := range universe {
		if _, occ := occupied[s]; !occ {
			empty = append(empty, s)
		}
	}
	return empty
}

// Search evolves the population for exactly MaxGenerations generations,
// applying elitism, tournament-selected breeding, crossover, and mutation
// each generation.
func (g *GA) Search() {
	start := time.Now()
	runID := uuid.NewString()
	g.logger.Info("ga search start",
		zap.String("run_id", runID),
		zap.Int("population_size", g.params.PopulationSize),
		zap.Int("max_generations", g.params.MaxGenerations),
		zap.Int("elitism", g.params.Elitism))

	population := make([]gaIndividual, g.params.PopulationSize)
	for i := range population {
		population[i] = g.newRandomIndividual()
	}
	sortByObjective(population)

	initialSchedule := population[0].schedule
	g.initialAllocation = roomAllocation(initialSchedule)

	bestTrace := make([]float64, 0, g.params.MaxGenerations+1)
	avgTrace := make([]float64, 0, g.params.MaxGenerations+1)
	bestTrace = append(bestTrace, population[0].objective)
	avgTrace = append(avgTrace, averageObjective(population))

	for gen := 0; gen < g.params.MaxGenerations; gen++ {
		next := make([]gaIndividual, 0, g.params.PopulationSize)
		for i := 0; i < g.params.Elitism; i++ {
			next = append(next, gaIndividual{
				schedule:  population[i].schedule.Clone(),
				objective: population[i].objective,
			})
		}

		for len(next) < g.params.PopulationSize {
			parent1 := g.tournamentSelect(population)
			parent2 := g.tournamentSelect(population)

			var child1, child2 Schedule
			if g.rng.Float64() < g.params.CrossoverRate {
				child1, child2 = g.crossover(parent1, parent2)
			} else {
				child1 = parent1.schedule.Clone()
				child2 = parent2.schedule.Clone()
			}

			g.mutate(child1)
			g.mutate(child2)

			next = append(next, gaIndividual{schedule: child1, objective: g.eval.Evaluate(child1)})
			if len(next) < g.params.PopulationSize {
				next = append(next, gaIndividual{schedule: child2, objective: g.eval.Evaluate(child2)})
			}
		}

		population = next
		sortByObjective(population)
		bestTrace = append(bestTrace, population[0].objective)
		avgTrace = append(avgTrace, averageObjective(population))

		g.logger.Debug("ga generation done",
			zap.Int("generation", gen),
			zap.Float64("best", population[0].objective),
			zap.Float64("avg", avgTrace[len(avgTrace)-1]))
	}

	g.result = GAResult{
		Result: Result{
			RunID:                  runID,
			RoomAllocationInitial:  g.initialAllocation,
			RoomAllocation:         roomAllocation(population[0].schedule),
			SearchTime:             time.Since(start),
			Iteration:              g.params.MaxGenerations,
			ObjectiveOverIteration: bestTrace,
		},
		PopulationSize:             g.params.PopulationSize,
		ObjectiveBestOverIteration: bestTrace,
		ObjectiveAvgOverIteration:  avgTrace,
		Params:                     g.params,
	}

	g.logger.Info("ga search done",
		zap.String("run_id", runID),
		zap.Int("generations", g.params.MaxGenerations),
		zap.Float64("final_best", population[0].objective),
		zap.Duration("search_time", g.result.SearchTime))
}

func sortByObjective(population []gaIndividual) {
	sort.Slice(population, func(i, j int) bool {
		return population[i].objective < population[j].objective
	})
}

func averageObjective(population []gaIndividual) float64 {
	var sum float64
	for _, ind := range population {
		sum += ind.objective
	}
	return sum / float64(len(population))
}

// Result returns the outcome of the completed run.
func (g *GA) Result() GAResult {
	return g.result
}
