package game

import (
	"log/slog"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/systems"
	"github.com/pthm-cable/pasture/telemetry"
)

// Initialize seeds a fresh run from the current config.
func (g *Game) Initialize() {
	g.Reset(nil)
}

// Reset clears the grid and history, reseeds from cfg (or the current config
// when cfg is nil) and leaves the game Ready.
func (g *Game) Reset(cfg *config.Config) {
	if cfg != nil {
		g.cfg = cfg.Clone()
	}
	if g.grid.Width() != g.cfg.Grid.Width || g.grid.Height() != g.cfg.Grid.Height {
		g.grid = systems.NewGrid(g.cfg.Grid.Width, g.cfg.Grid.Height)
	} else {
		g.grid.Reset()
	}

	g.tick = 0
	g.history = make([]components.Sample, 0, g.cfg.History.Cap)
	g.extinct = components.KindEmpty
	g.spawns = g.spawns[:0]

	g.collector = telemetry.NewCollector(g.cfg.Telemetry.StatsWindow)
	g.perfCollector = telemetry.NewPerfCollector(g.cfg.Telemetry.StatsWindow)
	g.bookmarkDetector = telemetry.NewBookmarkDetector(g.cfg.Telemetry.BookmarkHistorySize)

	g.seedPopulation()
	g.counts = g.grid.Counts()
	g.state = StateReady

	if err := g.outputManager.WriteConfig(g.cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	slog.Info("simulation reset",
		"width", g.cfg.Grid.Width,
		"height", g.cfg.Grid.Height,
		"grass", g.counts.Grass,
		"sheep", g.counts.Sheep,
		"wolves", g.counts.Wolves,
	)
}

// seedPopulation places each kind's initial count into distinct, uniformly
// random empty cells: grass first, then sheep, then wolves. Placement stops
// quietly once the grid is full.
func (g *Game) seedPopulation() {
	empty := g.grid.EmptyPositions()
	remaining := len(empty)

	requested := []int{g.cfg.Grass.InitialCount, g.cfg.Sheep.InitialCount, g.cfg.Wolf.InitialCount}
	for i, kind := range components.Kinds {
		want := requested[i]
		placed := 0
		for ; placed < want && remaining > 0; placed++ {
			// Partial Fisher-Yates: draw from the unused prefix.
			j := g.rng.IntN(remaining)
			p := empty[j]
			empty[j] = empty[remaining-1]
			remaining--
			g.grid.Set(p.X, p.Y, components.NewEntity(kind, p.X, p.Y))
		}
		if placed < want {
			slog.Warn("grid full, seeding stopped early",
				"kind", kind.String(),
				"requested", want,
				"placed", placed,
			)
		}
	}
}
