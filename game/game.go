// Package game implements the pasture simulation engine: seeding, the
// grass → sheep → wolves tick pipeline, population history and extinction.
package game

import (
	"log/slog"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/systems"
	"github.com/pthm-cable/pasture/telemetry"
)

// State is the engine lifecycle state.
type State uint8

const (
	StateUninitialized State = iota
	StateReady
	StateRunning
	StatePaused
	StateEnded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Options configures a Game beyond the simulation config.
type Options struct {
	Seed int64 // used when Rand is nil

	// Rand overrides the random source. Tests inject scripted sources here.
	Rand systems.Rand

	LogStats  bool   // log window stats and bookmarks via slog
	OutputDir string // empty disables CSV output
	Debug     bool   // panic when a tick breaks a grid invariant

	// StatsCallback is invoked for every flushed telemetry window.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds one simulation run. Games share no state and may run side by side.
type Game struct {
	cfg  *config.Config
	rng  systems.Rand
	seed int64
	grid *systems.Grid

	state   State
	extinct components.Kind // KindEmpty until a population dies out
	tick    int32
	counts  components.Counts
	history []components.Sample

	// per-tick scratch
	spawns []*components.Entity

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	statsCallback    func(telemetry.WindowStats)
	logStats         bool
	debug            bool
}

// New creates an uninitialized game. Call Initialize or Reset before stepping.
// The config is copied; later edits by the caller do not leak into the run.
func New(cfg *config.Config, opts Options) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	rng := opts.Rand
	if rng == nil {
		rng = systems.NewRand(opts.Seed)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:           cfg.Clone(),
		rng:           rng,
		seed:          opts.Seed,
		outputManager: om,
		statsCallback: opts.StatsCallback,
		logStats:      opts.LogStats,
		debug:         opts.Debug,
	}
	g.grid = systems.NewGrid(g.cfg.Grid.Width, g.cfg.Grid.Height)
	return g, nil
}

// Config returns the active configuration. Callers must treat it as read-only.
func (g *Game) Config() *config.Config { return g.cfg }

// Grid exposes the world for rendering. Callers must not mutate it.
func (g *Game) Grid() *systems.Grid { return g.grid }

// Tick returns the number of completed ticks since the last reset.
func (g *Game) Tick() int32 { return g.tick }

// State returns the lifecycle state.
func (g *Game) State() State { return g.state }

// PopulationCounts returns the counts recorded at the end of the last tick (or at seeding).
func (g *Game) PopulationCounts() components.Counts { return g.counts }

// History returns a copy of the bounded population history, oldest first.
func (g *Game) History() []components.Sample {
	out := make([]components.Sample, len(g.history))
	copy(out, g.history)
	return out
}

// HasEnded reports whether a population went extinct.
func (g *Game) HasEnded() bool { return g.state == StateEnded }

// ExtinctPopulation returns the kind whose extinction ended the run.
func (g *Game) ExtinctPopulation() (components.Kind, bool) {
	return g.extinct, g.state == StateEnded
}

// IsRunning reports whether the scheduler should keep calling Step.
func (g *Game) IsRunning() bool { return g.state == StateRunning }

// Start moves a ready or paused game into the running state.
func (g *Game) Start() {
	if g.state == StateReady || g.state == StatePaused {
		g.state = StateRunning
	}
}

// Pause stops a running game.
func (g *Game) Pause() {
	if g.state == StateRunning {
		g.state = StatePaused
	}
}

// TogglePause flips between running and paused; a ready game starts.
func (g *Game) TogglePause() {
	switch g.state {
	case StateRunning:
		g.state = StatePaused
	case StateReady, StatePaused:
		g.state = StateRunning
	}
}

// GameSpeed returns the configured ticks per second.
func (g *Game) GameSpeed() int { return g.cfg.GameSpeed }

// SetGameSpeed changes the ticks-per-second hint for the scheduler.
// Tick logic never reads it. Non-positive values are ignored.
func (g *Game) SetGameSpeed(tps int) {
	if tps > 0 {
		g.cfg.GameSpeed = tps
	}
}

// Seed returns the seed the default random source was built from.
func (g *Game) Seed() int64 { return g.seed }

// Close writes the history summary and closes run output.
func (g *Game) Close() error {
	if err := g.outputManager.WriteSummary(g.Summary()); err != nil {
		slog.Error("failed to write summary", "error", err)
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
		return err
	}
	return nil
}
