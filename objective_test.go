package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestObjectiveZeroWhenNoConflictsOrOvercapacity covers half of P4: the
// objective is exactly 0 when every student's meetings land in distinct
// (day, hour) cells and every room fits its class.
func TestObjectiveZeroWhenNoConflictsOrOvercapacity(t *testing.T) {
	classes := []ClassSpec{{Code: "A", Students: 1, Credits: 1}}
	rooms := []RoomSpec{{Code: "R1", Capacity: 1}}
	students := []StudentSpec{{ID: "S1", Priorities: map[int]string{1: "A"}}}
	p, err := NewProblem(classes, rooms, students)
	require.NoError(t, err)

	schedule := Schedule{"A": {NewSlot("R1", Senin, 8)}}
	assert.Equal(t, 0.0, Objective(p, schedule))
}

// TestObjectiveConflictPenalty covers S4: a student double-booked in the
// same (day, hour) cell across two classes pays a penalty of 2.
func TestObjectiveConflictPenalty(t *testing.T) {
	classes := []ClassSpec{
		{Code: "A", Students: 1, Credits: 1},
		{Code: "B", Students: 1, Credits: 1},
	}
	rooms := []RoomSpec{{Code: "R1", Capacity: 5}, {Code: "R2", Capacity: 5}}
	students := []StudentSpec{{ID: "S1", Priorities: map[int]string{1: "A", 2: "B"}}}
	p, err := NewProblem(classes, rooms, students)
	require.NoError(t, err)

	schedule := Schedule{
		"A": {NewSlot("R1", Senin, 8)},
		"B": {NewSlot("R2", Senin, 8)},
	}
	assert.Equal(t, 2.0, Objective(p, schedule))
}

// TestObjectiveCapacityPenalty covers S3: a credit-2 class of 100 students
// in a 50-seat room pays 2*(100-50) = 100 regardless of slot choice.
func TestObjectiveCapacityPenalty(t *testing.T) {
	classes := []ClassSpec{{Code: "A", Students: 100, Credits: 2}}
	rooms := []RoomSpec{{Code: "R1", Capacity: 50}}
	students := []StudentSpec{}
	for i := 0; i < 100; i++ {
		students = append(students, StudentSpec{
			ID:         "S" + string(rune('0'+i%10)),
			Priorities: map[int]string{1: "A"},
		})
	}
	p, err := NewProblem(classes, rooms, students)
	require.NoError(t, err)

	schedule := Schedule{"A": {NewSlot("R1", Senin, 8), NewSlot("R1", Selasa, 9)}}
	assert.Equal(t, 100.0, Objective(p, schedule))
}

// TestEvaluatorCounterResetsBetweenCalls ensures the reusable Evaluator
// does not leak state across repeated Evaluate calls (the hot-path
// optimization in §4.3 must not corrupt later evaluations).
func TestEvaluatorCounterResetsBetweenCalls(t *testing.T) {
	classes := []ClassSpec{
		{Code: "A", Students: 1, Credits: 1},
		{Code: "B", Students: 1, Credits: 1},
	}
	rooms := []RoomSpec{{Code: "R1", Capacity: 5}, {Code: "R2", Capacity: 5}}
	students := []StudentSpec{{ID: "S1", Priorities: map[int]string{1: "A", 2: "B"}}}
	p, err := NewProblem(classes, rooms, students)
	require.NoError(t, err)

	evaluator := NewEvaluator(p)

	conflicting := Schedule{
		"A": {NewSlot("R1", Senin, 8)},
		"B": {NewSlot("R2", Senin, 8)},
	}
	assert.Equal(t, 2.0, evaluator.Evaluate(conflicting))

	clean := Schedule{
		"A": {NewSlot("R1", Senin, 8)},
		"B": {NewSlot("R2", Selasa, 9)},
	}
	assert.Equal(t, 0.0, evaluator.Evaluate(clean))
}
