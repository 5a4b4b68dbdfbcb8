package timetable

// SAConfig holds the tunable parameters of the Simulated Annealing solver.
type SAConfig struct {
	// InitialTemp is the starting temperature. Higher values tolerate more
	// uphill moves early in the run.
	InitialTemp float64
	// Decay multiplies the temperature after every iteration; must be in
	// (0, 1).
	Decay float64
}

// DefaultSAConfig matches §4.6 of the specification.
func DefaultSAConfig() SAConfig {
	return SAConfig{InitialTemp: 100000, Decay: 0.995}
}

// HillClimbingConfig holds the tunable parameters shared by the four
// Hill-Climbing variants. Not every field applies to every variant; see
// the comment on each.
type HillClimbingConfig struct {
	// MaxSideways caps the sideways-move streak for HC-Sideways.
	MaxSideways int
	// MaxRestart caps the number of independent trials for HC-RandomRestart.
	MaxRestart int
	// MaxIterationsPerRestart caps each trial's iteration count for
	// HC-RandomRestart; 0 means unbounded.
	MaxIterationsPerRestart int
}

// DefaultHillClimbingConfig matches §4.7 of the specification.
func DefaultHillClimbingConfig() HillClimbingConfig {
	return HillClimbingConfig{
		MaxSideways:             50,
		MaxRestart:              10,
		MaxIterationsPerRestart: 0,
	}
}

// GAParams holds the tunable parameters of the Genetic Algorithm solver.
type GAParams struct {
	PopulationSize int
	MaxGenerations int
	CrossoverRate  float64
	MutationRate   float64
	TournamentK    int
	Elitism        int
}

// DefaultGAParams matches §4.8 of the specification.
func DefaultGAParams() GAParams {
	return GAParams{
		PopulationSize: 50,
		MaxGenerations: 200,
		CrossoverRate:  0.9,
		MutationRate:   0.2,
		TournamentK:    3,
		Elitism:        1,
	}
}

// clampElitism enforces Elitism ∈ [0, populationSize-1], per §4.8.
func clampElitism(elitism, populationSize int) int {
	if elitism < 0 {
		return 0
	}
	if populationSize > 0 && elitism > populationSize-1 {
		return populationSize - 1
	}
	return elitism
}

// Config collects the defaults for every solver family in one place, for
// callers (and the demonstration CLI) that want to load and layer
// overrides without constructing each sub-config independently.
type Config struct {
	SA           SAConfig
	HillClimbing HillClimbingConfig
	GA           GAParams
}

// DefaultConfig returns the full set of documented defaults.
func DefaultConfig() Config {
	return Config{
		SA:           DefaultSAConfig(),
		HillClimbing: DefaultHillClimbingConfig(),
		GA:           DefaultGAParams(),
	}
}
