// Package timetable implements the metaheuristic search engine behind a
// university course timetabling system: the schedule representation,
// incremental move operators, objective function, and the family of
// neighborhood-search solvers (Simulated Annealing, four Hill-Climbing
// variants, and a Genetic Algorithm) that share that representation.
//
// The package is side-effect free — no files, no network, no flags. A
// caller constructs a Problem, validates it, builds a solver with New*,
// calls Search, and reads the solver's Result. See cmd/timetablecore for
// an end-to-end driver.
package timetable
