package main

import (
	"github.com/spf13/cobra"

	"github.com/benjaminjkraft/csp-wordle/internal/sim"
	"github.com/benjaminjkraft/csp-wordle/internal/solver"
)

var (
	simLimit      int
	simTrials     int
	simWorkers    int
	simSeed       int64
	simNoProgress bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play every answer and report how the strategy did",
	Args:  cobra.NoArgs,
	RunE:  runSimulate,
}

func runSimulate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("limit") {
		cfg.Simulation.Limit = simLimit
	}
	if flags.Changed("trials") {
		cfg.Simulation.Trials = simTrials
	}
	if flags.Changed("workers") {
		cfg.Simulation.Workers = simWorkers
	}
	if flags.Changed("seed") {
		cfg.Simulation.Seed = simSeed
	}
	if simNoProgress {
		cfg.Simulation.Progress = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	corpus, answers, err := loadCorpus()
	if err != nil {
		return err
	}
	factory, err := solver.Lookup(cfg.Strategy)
	if err != nil {
		return err
	}

	report, err := sim.Run(cmd.Context(), cfg.Strategy, corpus, answers, factory, sim.Options{
		MaxGuesses: cfg.MaxGuesses,
		Trials:     cfg.Simulation.Trials,
		Workers:    cfg.Simulation.Workers,
		Limit:      cfg.Simulation.Limit,
		Seed:       cfg.Simulation.Seed,
		HardMode:   cfg.HardMode,
		Progress:   cfg.Simulation.Progress,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	report.Print(cmd.OutOrStdout())
	return nil
}

func init() {
	f := simulateCmd.Flags()
	f.IntVar(&simLimit, "limit", 0, "only play the first N answers")
	f.IntVar(&simTrials, "trials", 1, "games per answer")
	f.IntVar(&simWorkers, "workers", 0, "parallel games (default GOMAXPROCS)")
	f.Int64Var(&simSeed, "seed", 1, "seed for random strategies")
	f.BoolVar(&simNoProgress, "no-progress", false, "hide the progress bar")
}
