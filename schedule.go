package timetable

import "math/rand"

// Schedule is the mutable candidate solution: for each class code, the
// ordered sequence of Slots it occupies. Its length for a class always
// equals that class's Credits (invariant I1).
type Schedule map[string][]Slot

// Seed builds a fresh Schedule for p by, for each class, sampling its
// room codes with replacement and its (day, hour) cells without
// replacement, then pairing them positionally. This guarantees I1 and I2
// but makes no attempt to avoid cross-class collisions — those are left
// for the objective function and solvers to discover.
func Seed(p *Problem, rng *rand.Rand) Schedule {
	schedule := make(Schedule, len(p.Classes))
	roomCodes := p.RoomCodes()
	dayHours := allDayHours()

	for _, class := range p.Classes {
		k := class.Credits
		slots := make([]Slot, k)

		rooms := make([]string, k)
		for i := 0; i < k; i++ {
			rooms[i] = roomCodes[rng.Intn(len(roomCodes))]
		}

		picked := samplePerm(rng, len(dayHours), k)
		for i := 0; i < k; i++ {
			dh := dayHours[picked[i]]
			slots[i] = NewSlot(rooms[i], dh.Day, dh.Hour)
		}
		schedule[class.Code] = slots
	}
	return schedule
}

// samplePerm returns k distinct indices in [0,n) chosen uniformly without
// replacement, via a partial Fisher-Yates shuffle: it builds the full
// index array of length n but performs only k swaps.
func samplePerm(rng *rand.Rand, n, k int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		indices[i], indices[j] = indices[j], indices[i]
	}
	return indices[:k]
}

// Clone deep-copies a Schedule so that mutating the copy never aliases the
// original's slot sequences. Slot values themselves are safe to share.
func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for code, slots := range s {
		copied := make([]Slot, len(slots))
		copy(copied, slots)
		out[code] = copied
	}
	return out
}

// indexOf returns the position of target within slots, or -1. Move
// primitives use this to locate the slot they must replace.
func indexOf(slots []Slot, target Slot) int {
	for i, s := range slots {
		if s == target {
			return i
		}
	}
	return -1
}
