package timetable

// ClassSpec is a single course offering: its student load and the number of
// one-hour meetings ("sks") it needs per week.
type ClassSpec struct {
	Code     string
	Students int
	Credits  int
}

// RoomSpec is a physical teaching space with a seat capacity.
type RoomSpec struct {
	Code     string
	Capacity int
}

// StudentSpec is a single student's ordered enrollment. Priorities maps a
// priority number (1..n) to the class code chosen at that priority; the
// priority numbers must form the permutation 1..n.
type StudentSpec struct {
	ID         string
	Priorities map[int]string
}

// Problem is the immutable input to every solver: the classes to place, the
// rooms available, and the students whose schedules drive the conflict
// penalty. Construct with NewProblem, which validates the data, or build a
// Problem by hand and call Validate before use.
type Problem struct {
	Classes  []ClassSpec
	Rooms    []RoomSpec
	Students []StudentSpec

	classIndex map[string]ClassSpec
	roomIndex  map[string]RoomSpec
	roomCodes  []string
}

// NewProblem constructs and validates a Problem in one step.
func NewProblem(classes []ClassSpec, rooms []RoomSpec, students []StudentSpec) (*Problem, error) {
	p := &Problem{Classes: classes, Rooms: rooms, Students: students}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks every invariant in §4.1 of the specification and
// memoizes lookup tables used by seeding and the objective function. It must
// be called (directly or via NewProblem) before a Problem is handed to a
// solver.
func (p *Problem) Validate() error {
	classIndex := make(map[string]ClassSpec, len(p.Classes))
	enrollmentSeen := make(map[string]int, len(p.Classes))
	for _, class := range p.Classes {
		if _, dup := classIndex[class.Code]; dup {
			return invalidInput("duplicate_class_code", "duplicate class code %q", class.Code)
		}
		if class.Credits < 1 {
			return invalidInput("non_positive_credits", "class %q has non-positive credits (%d)", class.Code, class.Credits)
		}
		if class.Students < 1 {
			return invalidInput("non_positive_students", "class %q has non-positive student count (%d)", class.Code, class.Students)
		}
		classIndex[class.Code] = class
		enrollmentSeen[class.Code] = 0
	}

	roomIndex := make(map[string]RoomSpec, len(p.Rooms))
	roomCodes := make([]string, 0, len(p.Rooms))
	for _, room := range p.Rooms {
		if _, dup := roomIndex[room.Code]; dup {
			return invalidInput("duplicate_room_code", "duplicate room code %q", room.Code)
		}
		if room.Capacity < 0 {
			return invalidInput("negative_room_capacity", "room %q has negative capacity (%d)", room.Code, room.Capacity)
		}
		roomIndex[room.Code] = room
		roomCodes = append(roomCodes, room.Code)
	}

	for _, student := range p.Students {
		n := len(student.Priorities)
		seenPriority := make(map[int]bool, n)
		for priority, code := range student.Priorities {
			if priority < 1 || priority > n {
				return invalidInput("invalid_priority", "student %q has invalid priority number %d", student.ID, priority)
			}
			if seenPriority[priority] {
				return invalidInput("invalid_priority", "student %q has duplicate priority number %d", student.ID, priority)
			}
			seenPriority[priority] = true
			if _, known := classIndex[code]; !known {
				return invalidInput("unknown_class_code", "student %q references unknown class code %q", student.ID, code)
			}
			enrollmentSeen[code]++
		}
	}

	for _, class := range p.Classes {
		if enrollmentSeen[class.Code] != class.Students {
			return invalidInput("enrollment_mismatch",
				"class %q declares %d students but %d students are enrolled", class.Code, class.Students, enrollmentSeen[class.Code])
		}
	}

	p.classIndex = classIndex
	p.roomIndex = roomIndex
	p.roomCodes = roomCodes
	return nil
}

// RoomCodes returns the room codes in declaration order. It returns nil if
// called before Validate — solvers always validate at construction, so this
// is safe for internal use.
func (p *Problem) RoomCodes() []string {
	return p.roomCodes
}

// ClassByCode looks up a class by its code.
func (p *Problem) ClassByCode(code string) (ClassSpec, bool) {
	c, ok := p.classIndex[code]
	return c, ok
}

// RoomCapacity returns the capacity of the named room.
func (p *Problem) RoomCapacity(code string) int {
	return p.roomIndex[code].Capacity
}
