package main

import (
	"fmt"
	"strings"

	"github.com/jadwal-engine/coursetimetable"
)

// printGrid renders a room-by-day-by-hour grid of allocation, in the
// spirit of the teacher's PrintSchedule: one column per room, one row per
// (day, hour) cell, class codes filling occupied cells.
func printGrid(roomCodes []string, allocation map[string][]timetable.SlotAssignment) {
	cell := make(map[string]map[timetable.Day]map[int]string)
	for room, assignments := range allocation {
		byDay := make(map[timetable.Day]map[int]string)
		for _, a := range assignments {
			if byDay[a.Day] == nil {
				byDay[a.Day] = make(map[int]string)
			}
			byDay[a.Day][a.StartHour] = a.ClassCode
		}
		cell[room] = byDay
	}

	nameLen := len("CLS000")
	for _, room := range roomCodes {
		if len(room) > nameLen {
			nameLen = len(room)
		}
	}

	fmt.Printf("%-10s ", "")
	for _, room := range roomCodes {
		fmt.Printf("| %-*s ", nameLen, room)
	}
	fmt.Println("|")

	hyphens := strings.Repeat("-", nameLen)
	fmt.Printf("%-10s ", "")
	for range roomCodes {
		fmt.Printf("+-%s-", hyphens)
	}
	fmt.Println("+")

	for _, day := range timetable.Days {
		for hour := timetable.FirstHour; hour <= timetable.LastHour; hour++ {
			fmt.Printf("%-5s %02d:00 ", day, hour)
			for _, room := range roomCodes {
				code := ""
				if byDay, ok := cell[room]; ok {
					if c, ok := byDay[day][hour]; ok {
						code = c
					}
				}
				fmt.Printf("| %-*s ", nameLen, code)
			}
			fmt.Println("|")
		}
	}
}

// printSummary prints a two-line textual summary of a run: the iteration
// count and search time, then the objective trace head/tail.
func printSummary(label string, iteration int, objectives []float64, searchTime string) {
	fmt.Printf("%s: %d iterations in %s\n", label, iteration, searchTime)
	if len(objectives) == 0 {
		return
	}
	head := objectives[0]
	tail := objectives[len(objectives)-1]
	fmt.Printf("  objective: %.1f -> %.1f\n", head, tail)
}
