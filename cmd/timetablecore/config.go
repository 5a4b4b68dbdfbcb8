package main

import (
	"github.com/jadwal-engine/coursetimetable"
	"github.com/spf13/viper"
)

// loadConfig builds a timetable.Config from the package defaults, layering
// on overrides from an optional YAML/JSON file. This is the only place the
// demonstration binary reads a configuration file — the core library never
// touches the filesystem.
func loadConfig(path string) (timetable.Config, error) {
	cfg := timetable.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("sa.initialtemp", cfg.SA.InitialTemp)
	v.SetDefault("sa.decay", cfg.SA.Decay)
	v.SetDefault("hillclimbing.maxsideways", cfg.HillClimbing.MaxSideways)
	v.SetDefault("hillclimbing.maxrestart", cfg.HillClimbing.MaxRestart)
	v.SetDefault("hillclimbing.maxiterationsperrestart", cfg.HillClimbing.MaxIterationsPerRestart)
	v.SetDefault("ga.populationsize", cfg.GA.PopulationSize)
	v.SetDefault("ga.maxgenerations", cfg.GA.MaxGenerations)
	v.SetDefault("ga.crossoverrate", cfg.GA.CrossoverRate)
	v.SetDefault("ga.mutationrate", cfg.GA.MutationRate)
	v.SetDefault("ga.tournamentk", cfg.GA.TournamentK)
	v.SetDefault("ga.elitism", cfg.GA.Elitism)

	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
