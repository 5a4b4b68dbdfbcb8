package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jadwal-engine/coursetimetable"
	"github.com/spf13/cobra"
)

func newGenerateCommand() *cobra.Command {
	var (
		numClasses  int
		numRooms    int
		numStudents int
		maxCredits  int
		seed        int64
		out         string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a small random problem for experimentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			rng := rand.New(rand.NewSource(seed))
			if seed == 0 {
				rng = rand.New(rand.NewSource(time.Now().UnixNano()))
			}

			classes, rooms, students := generateProblem(rng, numClasses, numRooms, numStudents, maxCredits)

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				return writeProblemDoc(f, classes, rooms, students)
			}
			return writeProblemDoc(w, classes, rooms, students)
		},
	}

	cmd.Flags().IntVar(&numClasses, "classes", 6, "number of classes to generate")
	cmd.Flags().IntVar(&numRooms, "rooms", 3, "number of rooms to generate")
	cmd.Flags().IntVar(&numStudents, "students", 20, "number of students to generate")
	cmd.Flags().IntVar(&maxCredits, "max-credits", 3, "maximum credits per class")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 = derive from wall clock)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default: stdout)")
	return cmd
}

// generateProblem builds a small, always-valid random Problem: students are
// assigned distinct-priority enrollments into a random subset of classes,
// a class no student picked is added to one random student's list, and
// every class's declared Students count is set to match the resulting
// enrollment exactly, so with numStudents > 0 the result always passes
// Validate.
func generateProblem(rng *rand.Rand, numClasses, numRooms, numStudents, maxCredits int) ([]timetable.ClassSpec, []timetable.RoomSpec, []timetable.StudentSpec) {
	classes := make([]timetable.ClassSpec, numClasses)
	classCodes := make([]string, numClasses)
	for i := range classes {
		code := fmt.Sprintf("CLS%03d", i+1)
		classCodes[i] = code
		classes[i] = timetable.ClassSpec{
			Code:    code,
			Credits: 1 + rng.Intn(maxCredits),
		}
	}

	rooms := make([]timetable.RoomSpec, numRooms)
	for i := range rooms {
		rooms[i] = timetable.RoomSpec{
			Code:     fmt.Sprintf("R%02d", i+1),
			Capacity: 20 + rng.Intn(60),
		}
	}

	students := make([]timetable.StudentSpec, numStudents)
	enrollment := make(map[string]int, numClasses)
	for i := range students {
		load := 1 + rng.Intn(min(3, numClasses))
		perm := rng.Perm(numClasses)[:load]
		priorities := make(map[int]string, load)
		for p, classIdx := range perm {
			code := classCodes[classIdx]
			priorities[p+1] = code
			enrollment[code]++
		}
		students[i] = timetable.StudentSpec{
			ID:         fmt.Sprintf("S%04d", i+1),
			Priorities: priorities,
		}
	}

	for i, c := range classes {
		if enrollment[c.Code] == 0 && numStudents > 0 {
			s := students[rng.Intn(numStudents)]
			s.Priorities[len(s.Priorities)+1] = c.Code
			enrollment[c.Code]++
		}
		classes[i].Students = max(1, enrollment[c.Code])
	}

	return classes, rooms, students
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
