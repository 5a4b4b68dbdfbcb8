package timetable

import (
	"sort"
	"time"
)

// SlotAssignment is the export form of one occupied Slot: the class
// teaching it plus the (day, start, end) triple, without the room code
// since it is already the map key in RoomAllocation.
type SlotAssignment struct {
	ClassCode string
	Day       Day
	StartHour int
	EndHour   int
}

// roomAllocation converts a Schedule into the room-by-assignment form used
// in every Result, grouping meetings by room code. Within a room, meetings
// are listed by class code, then in each class's slot order.
func roomAllocation(schedule Schedule) map[string][]SlotAssignment {
	codes := make([]string, 0, len(schedule))
	for classCode := range schedule {
		codes = append(codes, classCode)
	}
	sort.Strings(codes)

	out := make(map[string][]SlotAssignment)
	for _, classCode := range codes {
		for _, s := range schedule[classCode] {
			out[s.RoomCode] = append(out[s.RoomCode], SlotAssignment{
				ClassCode: classCode,
				Day:       s.Day,
				StartHour: s.StartHour,
				EndHour:   s.EndHour,
			})
		}
	}
	return out
}

// Result is the common shape returned by every solver's Result() method.
// Variant-specific telemetry lives in the embedding struct
// (SAResult/HCResult/GAResult), not here.
type Result struct {
	RunID                  string
	RoomAllocationInitial  map[string][]SlotAssignment
	RoomAllocation         map[string][]SlotAssignment
	SearchTime             time.Duration
	Iteration              int
	ObjectiveOverIteration []float64
}

// SAResult is the SA solver's Result, adding the temperature-schedule
// telemetry described in §6.
type SAResult struct {
	Result
	LocalOptimaStuckCount    int
	DeltaEnergyOverIteration []float64
	TemperatureOverIteration []float64
}

// HCResult is the Hill-Climbing family's shared Result shape. Fields that
// do not apply to a given variant are left at their zero value.
type HCResult struct {
	Result
	LocalOptimaIteration int
	SidewaysMoves        int
	MaxSideways          int
	RestartCount         int
	IterationsPerRestart []int
}

// GAResult is the GA solver's Result, adding population telemetry.
type GAResult struct {
	Result
	PopulationSize             int
	ObjectiveBestOverIteration []float64
	ObjectiveAvgOverIteration  []float64
	Params                     GAParams
}
