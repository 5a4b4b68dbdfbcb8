package timetable

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBuildSlotIndexConsistency covers I3/I4: every slot in Occupants maps
// back to an occurrence in the schedule, and Empty is exactly the
// complement of Occupants within the universe.
func TestBuildSlotIndexConsistency(t *testing.T) {
	p := smallProblem(t)
	rng := rand.New(rand.NewSource(3))
	schedule := Seed(p, rng)
	idx := BuildSlotIndex(p, schedule)

	universe := Universe(p.RoomCodes())
	universeSet := make(map[Slot]bool, len(universe))
	for _, s := range universe {
		universeSet[s] = true
	}

	for slot, occupants := range idx.Occupants {
		assert.True(t, universeSet[slot])
		_, stillEmpty := idx.Empty[slot]
		assert.False(t, stillEmpty)
		assert.NotEmpty(t, occupants)
	}

	for _, s := range universe {
		_, occupied := idx.Occupants[s]
		_, empty := idx.Empty[s]
		assert.True(t, occupied != empty, "slot %+v must be exactly one of occupied/empty", s)
	}

	for _, class := range p.Classes {
		for _, s := range schedule[class.Code] {
			found := false
			for _, code := range idx.Occupants[s] {
				if code == class.Code {
					found = true
					break
				}
			}
			assert.True(t, found, "slot %+v should list class %s as an occupant", s, class.Code)
		}
	}
}
