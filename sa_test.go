package timetable

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalFeasibleProblem builds S1: one class, one room, one student.
func minimalFeasibleProblem(t *testing.T) *Problem {
	t.Helper()
	classes := []ClassSpec{{Code: "A", Students: 1, Credits: 1}}
	rooms := []RoomSpec{{Code: "R1", Capacity: 1}}
	students := []StudentSpec{{ID: "S1", Priorities: map[int]string{1: "A"}}}
	p, err := NewProblem(classes, rooms, students)
	require.NoError(t, err)
	return p
}

func TestSAMinimalFeasibleReachesZero(t *testing.T) {
	p := minimalFeasibleProblem(t)
	solver, err := NewSA(p, WithSARand(rand.New(rand.NewSource(10))))
	require.NoError(t, err)

	solver.Search()
	result := solver.Result()

	assert.Equal(t, 0.0, result.ObjectiveOverIteration[0])
	assert.Equal(t, 0.0, result.ObjectiveOverIteration[len(result.ObjectiveOverIteration)-1])
}

// TestSADeterministic covers P5: identical Problem and seed produce
// identical final schedules and traces.
func TestSADeterministic(t *testing.T) {
	p := smallProblemForSA(t)

	run := func(seed int64) SAResult {
		solver, err := NewSA(p, WithSARand(rand.New(rand.NewSource(seed))))
		require.NoError(t, err)
		solver.Search()
		return solver.Result()
	}

	r1 := run(42)
	r2 := run(42)

	assert.Equal(t, r1.ObjectiveOverIteration, r2.ObjectiveOverIteration)
	assert.Equal(t, r1.RoomAllocation, r2.RoomAllocation)
}

// TestSABoundedIterations covers P6: SA's iteration count is determined by
// InitialTemp and Decay, independent of the RNG stream.
func TestSABoundedIterations(t *testing.T) {
	p := smallProblemForSA(t)
	solver, err := NewSA(p,
		WithSAConfig(SAConfig{InitialTemp: 100, Decay: 0.9}),
		WithSARand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	solver.Search()
	result := solver.Result()

	assert.Equal(t, len(result.ObjectiveOverIteration), result.Iteration+1)
	assert.Greater(t, result.Iteration, 0)
	// 100·0.9^43 ≈ 1.08 > 1 and 100·0.9^44 ≈ 0.97, so exactly 44 iterations.
	assert.Equal(t, 44, result.Iteration)
}

func smallProblemForSA(t *testing.T) *Problem {
	t.Helper()
	classes := []ClassSpec{
		{Code: "A", Students: 1, Credits: 1},
		{Code: "B", Students: 1, Credits: 1},
	}
	rooms := []RoomSpec{{Code: "R1", Capacity: 1}, {Code: "R2", Capacity: 1}}
	students := []StudentSpec{
		{ID: "S1", Priorities: map[int]string{1: "A", 2: "B"}},
	}
	p, err := NewProblem(classes, rooms, students)
	require.NoError(t, err)
	return p
}
