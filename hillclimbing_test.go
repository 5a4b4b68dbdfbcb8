package timetable

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// forcedConflictProblem builds S4: two single-meeting classes and a room
// each, with one student enrolled in both, so there's always at least one
// improving move available once the seed creates a conflict.
func forcedConflictProblem(t *testing.T) *Problem {
	t.Helper()
	classes := []ClassSpec{
		{Code: "A", Students: 1, Credits: 1},
		{Code: "B", Students: 1, Credits: 1},
	}
	rooms := []RoomSpec{{Code: "R1", Capacity: 1}, {Code: "R2", Capacity: 1}}
	students := []StudentSpec{{ID: "S1", Priorities: map[int]string{1: "A", 2: "B"}}}
	p, err := NewProblem(classes, rooms, students)
	require.NoError(t, err)
	return p
}

func TestHCSteepestAscentReachesZeroOnForcedConflict(t *testing.T) {
	p := forcedConflictProblem(t)
	solver, err := NewHCSteepestAscent(p, WithHCRand(rand.New(rand.NewSource(11))))
	require.NoError(t, err)

	solver.Search()
	result := solver.Result()

	assert.Equal(t, 0.0, result.ObjectiveOverIteration[len(result.ObjectiveOverIteration)-1])
	assert.Equal(t, result.Iteration, result.LocalOptimaIteration)
}

func TestHCSteepestAscentMinimalFeasibleZeroIterations(t *testing.T) {
	p := minimalFeasibleProblem(t)
	solver, err := NewHCSteepestAscent(p, WithHCRand(rand.New(rand.NewSource(12))))
	require.NoError(t, err)

	solver.Search()
	result := solver.Result()

	assert.Equal(t, 0, result.LocalOptimaIteration)
	assert.Equal(t, 0.0, result.ObjectiveOverIteration[0])
}

func TestHCStochasticReachesZeroOnForcedConflict(t *testing.T) {
	p := forcedConflictProblem(t)
	solver, err := NewHCStochastic(p, WithHCRand(rand.New(rand.NewSource(13))))
	require.NoError(t, err)

	solver.Search()
	result := solver.Result()
	assert.Equal(t, 0.0, result.ObjectiveOverIteration[len(result.ObjectiveOverIteration)-1])
}

func TestHCSidewaysRespectsMaxSideways(t *testing.T) {
	p := forcedConflictProblem(t)
	solver, err := NewHCSideways(p, WithHCRand(rand.New(rand.NewSource(14))))
	require.NoError(t, err)
	solver.WithMaxSideways(5)

	solver.Search()
	result := solver.Result()

	assert.Equal(t, 5, result.MaxSideways)
	assert.LessOrEqual(t, result.SidewaysMoves, 5)
}

func TestHCRandomRestartTracksBestTrial(t *testing.T) {
	p := forcedConflictProblem(t)
	solver, err := NewHCRandomRestart(p, WithHCRand(rand.New(rand.NewSource(15))))
	require.NoError(t, err)
	solver.WithMaxRestart(5)

	solver.Search()
	result := solver.Result()

	assert.Equal(t, 0.0, result.ObjectiveOverIteration[len(result.ObjectiveOverIteration)-1])
	assert.LessOrEqual(t, result.RestartCount, 5)
	assert.Len(t, result.IterationsPerRestart, result.RestartCount)
}

// TestHCRandomRestartInitialAllocationMatchesWinningTrial pins down that the
// reported "before" schedule belongs to the same trial as the reported
// "after" schedule, not to some other seed discarded along the way.
func TestHCRandomRestartInitialAllocationMatchesWinningTrial(t *testing.T) {
	p := forcedConflictProblem(t)
	solver, err := NewHCRandomRestart(p, WithHCRand(rand.New(rand.NewSource(16))))
	require.NoError(t, err)
	solver.WithMaxRestart(5)

	solver.Search()
	result := solver.Result()

	require.NotNil(t, result.RoomAllocationInitial)
	initialSchedule := scheduleFromAllocation(result.RoomAllocationInitial)
	finalSchedule := scheduleFromAllocation(result.RoomAllocation)

	eval := NewEvaluator(p)
	initialObjective := eval.Evaluate(initialSchedule)
	finalObjective := eval.Evaluate(finalSchedule)

	assert.Equal(t, result.ObjectiveOverIteration[0], initialObjective)
	assert.Equal(t, result.ObjectiveOverIteration[len(result.ObjectiveOverIteration)-1], finalObjective)
}

// scheduleFromAllocation inverts roomAllocation for assertions: it rebuilds
// a per-class Schedule from the per-room SlotAssignment map a Result reports.
func scheduleFromAllocation(allocation map[string][]SlotAssignment) Schedule {
	schedule := make(Schedule)
	for roomCode, assignments := range allocation {
		for _, a := range assignments {
			slot := Slot{RoomCode: roomCode, Day: a.Day, StartHour: a.StartHour, EndHour: a.EndHour}
			schedule[a.ClassCode] = append(schedule[a.ClassCode], slot)
		}
	}
	return schedule
}
