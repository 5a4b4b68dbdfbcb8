package main

import (
	"encoding/json"
	"io"

	"github.com/jadwal-engine/coursetimetable"
)

// problemDoc is the on-disk JSON shape of a Problem: the
// timetable.ClassSpec/RoomSpec/StudentSpec slices, encoded with their
// default field names so no custom marshaling is needed. Problem itself is
// never serialized directly since it carries unexported lookup tables built
// by Validate.
type problemDoc struct {
	Classes  []timetable.ClassSpec   `json:"classes"`
	Rooms    []timetable.RoomSpec    `json:"rooms"`
	Students []timetable.StudentSpec `json:"students"`
}

func writeProblemDoc(w io.Writer, classes []timetable.ClassSpec, rooms []timetable.RoomSpec, students []timetable.StudentSpec) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(problemDoc{Classes: classes, Rooms: rooms, Students: students})
}

func readProblemDoc(r io.Reader) (*timetable.Problem, error) {
	var doc problemDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return timetable.NewProblem(doc.Classes, doc.Rooms, doc.Students)
}
