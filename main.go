package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/skitter/config"
	"github.com/pthm-cable/skitter/sim"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	agents := flag.Int("agents", 0, "Number of agents (0 = use config)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	logAgents := flag.Int("log-agents", 0, "Dump agent state every N ticks (0 = never)")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	s, err := sim.NewSim(sim.Options{
		Seed:           rngSeed,
		Agents:         *agents,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
	})
	if err != nil {
		slog.Error("failed to build simulation", "error", err)
		os.Exit(1)
	}
	defer s.Close()

	slog.Info("starting simulation",
		"seed", rngSeed,
		"agents", *agents,
		"max_ticks", *maxTicks,
		"output_dir", *outputDir,
	)

	for {
		if err := s.Step(); err != nil {
			slog.Error("simulation step failed", "error", err, "tick", s.Tick())
			os.Exit(1)
		}

		if *logAgents > 0 && int(s.Tick())%*logAgents == 0 {
			s.LogAgents()
		}

		if *maxTicks > 0 && int(s.Tick()) >= *maxTicks {
			slog.Info("max ticks reached", "tick", s.Tick())
			return
		}
	}
}
