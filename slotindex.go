package timetable

import "sort"

// SlotIndex is the inverted view of a Schedule: which classes occupy each
// Slot, and which Slots in the universe are empty. It is built once per
// Schedule and then updated incrementally by the MoveEngine primitives —
// never rebuilt from scratch mid-run.
type SlotIndex struct {
	Occupants map[Slot][]string
	Empty     map[Slot]struct{}
}

// BuildSlotIndex derives a SlotIndex from scratch for the given schedule
// over p's room universe. Empty starts as the full universe; every
// (class, slot) occurrence removes that slot from Empty on first sight and
// appends the class code to Occupants[slot].
func BuildSlotIndex(p *Problem, schedule Schedule) *SlotIndex {
	universe := Universe(p.RoomCodes())
	empty := make(map[Slot]struct{}, len(universe))
	for _, s := range universe {
		empty[s] = struct{}{}
	}

	occupants := make(map[Slot][]string)
	for _, class := range p.Classes {
		for _, s := range schedule[class.Code] {
			occupants[s] = append(occupants[s], class.Code)
			delete(empty, s)
		}
	}

	return &SlotIndex{Occupants: occupants, Empty: empty}
}

// EmptySlots returns the current empty slots as a slice sorted by room
// code, day and start hour. Solvers index into it by a random position, so
// a stable order keeps runs with the same seed reproducible.
func (idx *SlotIndex) EmptySlots() []Slot {
	out := make([]Slot, 0, len(idx.Empty))
	for s := range idx.Empty {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.RoomCode != b.RoomCode {
			return a.RoomCode < b.RoomCode
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return a.StartHour < b.StartHour
	})
	return out
}

// removeOccupant removes one occurrence of code from Occupants[slot]. If
// the resulting sequence is empty, the key is dropped and slot becomes
// empty again.
func (idx *SlotIndex) removeOccupant(slot Slot, code string) {
	occ := idx.Occupants[slot]
	for i, c := range occ {
		if c == code {
			occ = append(occ[:i], occ[i+1:]...)
			break
		}
	}
	if len(occ) == 0 {
		delete(idx.Occupants, slot)
		idx.Empty[slot] = struct{}{}
	} else {
		idx.Occupants[slot] = occ
	}
}

// addOccupant appends code to Occupants[slot], creating the entry and
// clearing slot from Empty if this is the first occupant.
func (idx *SlotIndex) addOccupant(slot Slot, code string) {
	if _, wasEmpty := idx.Empty[slot]; wasEmpty {
		delete(idx.Empty, slot)
	}
	idx.Occupants[slot] = append(idx.Occupants[slot], code)
}

// replaceOccupant swaps one occurrence of oldCode for newCode at slot,
// without touching Empty — used by Swap, where the slot is occupied both
// before and after.
func (idx *SlotIndex) replaceOccupant(slot Slot, oldCode, newCode string) {
	occ := idx.Occupants[slot]
	for i, c := range occ {
		if c == oldCode {
			occ[i] = newCode
			return
		}
	}
}
