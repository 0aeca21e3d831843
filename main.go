package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	logStats := flag.Bool("log-stats", false, "Output window stats and bookmarks via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = run until extinction)")
	realtime := flag.Bool("realtime", false, "Pace ticks at game_speed instead of running flat out")
	debug := flag.Bool("debug", false, "Check grid invariants after every tick")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	g, err := game.New(cfg, game.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
		Debug:     *debug,
	})
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	g.Initialize()
	g.Start()

	slog.Info("starting simulation",
		"seed", rngSeed,
		"max_ticks", *maxTicks,
		"realtime", *realtime,
		"game_speed", g.GameSpeed(),
	)

	var pacer *game.Pacer
	if *realtime {
		pacer = game.NewPacer(g.GameSpeed())
	}

	for g.IsRunning() {
		if pacer != nil && !pacer.Due() {
			time.Sleep(time.Millisecond)
			continue
		}
		g.Step()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			break
		}
	}

	if kind, ok := g.ExtinctPopulation(); ok {
		slog.Info("population extinct", "kind", kind.String(), "tick", g.Tick())
	}
	slog.Info("run summary", "summary", g.Summary())
}
