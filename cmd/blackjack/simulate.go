package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd plays automated rounds and summarizes the outcomes
type SimulateCmd struct {
	Rounds  int    `short:"n" default:"10000" help:"Number of rounds to play"`
	Players int    `short:"p" default:"1" help:"Players at the table"`
	Workers int    `short:"w" default:"0" help:"Worker goroutines (0 uses GOMAXPROCS)"`
	Seed    int64  `default:"0" help:"Random seed (0 picks one and reports it)"`
	StandOn int    `default:"17" help:"Players hit below this total"`
	Output  string `short:"o" help:"Write the JSON report to this file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := setupLogger(cfg, "simulate")
	if err != nil {
		return err
	}
	defer closeLog()

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sim := simulator.New(simulator.Config{
		Rounds:      c.Rounds,
		Players:     c.Players,
		Workers:     workers,
		Seed:        c.Seed,
		StandOn:     c.StandOn,
		GameOptions: cfg.GameOptions(),
		Logger:      logger,
		Clock:       quartz.NewReal(),
	})

	ctx := setupSignalHandler(logger)
	report, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if err := printReport(display.NewRenderer(os.Stdout), report); err != nil {
		return err
	}

	if c.Output != "" {
		if err := fileutil.WriteJSON(c.Output, report); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		logger.Info("Wrote report", "file", c.Output)
	}
	return nil
}

func printReport(r *display.Renderer, report *simulator.Report) error {
	stats := report.Stats
	low, high := stats.ConfidenceInterval95()

	lines := []struct {
		format string
		args   []any
	}{
		{"Rounds: %d, hands: %d (seed %d, %d workers, %s)", []any{stats.Rounds, stats.Hands, report.Seed, report.Workers, report.Elapsed}},
		{"Wins: %d (%.1f%%)", []any{stats.Wins, stats.Rate(stats.Wins) * 100}},
		{"Losses: %d (%.1f%%)", []any{stats.Losses, stats.Rate(stats.Losses) * 100}},
		{"Pushes: %d (%.1f%%)", []any{stats.Pushes, stats.Rate(stats.Pushes) * 100}},
		{"Blackjacks: %d, player busts: %d, dealer busts: %d", []any{stats.Blackjacks, stats.PlayerBusts, stats.DealerBusts}},
		{"Mean outcome per hand: %+.4f (95%% CI %+.4f to %+.4f)", []any{stats.Mean(), low, high}},
	}

	if err := r.Title("Simulation results"); err != nil {
		return err
	}
	for _, l := range lines {
		if err := r.Message(l.format, l.args...); err != nil {
			return err
		}
	}
	return nil
}
