package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/systems"
	"github.com/pthm-cable/pasture/telemetry"
)

// Step advances the simulation by exactly one tick. It does nothing before
// initialization or after an extinction; pausing is the scheduler's concern.
//
// Kinds update in a fixed order, grass then sheep then wolves, each against
// the grid as left by the previous phase, so predators always act on the
// post-movement positions of their prey.
func (g *Game) Step() {
	if g.state == StateUninitialized || g.state == StateEnded {
		return
	}

	g.perfCollector.StartTick()

	// Snapshot so structural changes mid-tick don't perturb iteration.
	grass, sheep, wolves := g.snapshot()

	g.perfCollector.StartPhase(telemetry.PhaseGrass)
	g.updateGrass(grass)
	g.commitSpawns()

	g.perfCollector.StartPhase(telemetry.PhaseSheep)
	g.updateAnimals(sheep)
	g.commitSpawns()

	g.perfCollector.StartPhase(telemetry.PhaseWolves)
	g.updateAnimals(wolves)
	g.commitSpawns()

	g.perfCollector.StartPhase(telemetry.PhaseCensus)
	g.tick++
	g.counts = g.grid.Counts()
	g.checkExtinction()
	g.recordHistory()
	if g.debug {
		if err := g.grid.CheckInvariants(); err != nil {
			panic(fmt.Sprintf("game: tick %d broke grid invariant: %v", g.tick, err))
		}
	}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
	g.perfCollector.EndTick()
}

// snapshot splits the grid's entities by kind in one row-major pass.
func (g *Game) snapshot() (grass, sheep, wolves []*components.Entity) {
	for _, e := range g.grid.Entities() {
		switch e.Kind {
		case components.KindGrass:
			grass = append(grass, e)
		case components.KindSheep:
			sheep = append(sheep, e)
		case components.KindWolf:
			wolves = append(wolves, e)
		}
	}
	return grass, sheep, wolves
}

// updateGrass ages every tuft, clearing the dead and queueing spread.
func (g *Game) updateGrass(grass []*components.Entity) {
	for _, e := range grass {
		if g.grid.Get(e.X, e.Y) != e {
			continue
		}
		out := systems.UpdateGrass(e, g.grid, g.cfg.Grass, g.rng)
		if !out.Alive {
			g.grid.Clear(e.X, e.Y)
			g.collector.RecordDeath(components.KindGrass, deathCause(out.Cause))
			continue
		}
		if out.Spawn != nil {
			g.spawns = append(g.spawns, out.Spawn)
		}
	}
}

// updateAnimals runs sheep or wolves and moves their records on the grid.
func (g *Game) updateAnimals(animals []*components.Entity) {
	for _, e := range animals {
		// Skip records that are no longer on their cell (already vacated or replaced).
		if g.grid.Get(e.X, e.Y) != e {
			continue
		}
		origin := e.Pos()

		out := systems.Update(e, g.grid, g.cfg, g.rng)
		if !out.Alive {
			g.grid.Clear(origin.X, origin.Y)
			g.collector.RecordDeath(e.Kind, deathCause(out.Cause))
			continue
		}

		if out.Ate {
			g.collector.RecordMeal(e.Kind)
			g.collector.RecordDeath(g.grid.Kind(out.AteAt.X, out.AteAt.Y), telemetry.CauseEaten)
		}

		if dest := e.Pos(); dest != origin {
			g.grid.Clear(origin.X, origin.Y)
			switch occupant := g.grid.Kind(dest.X, dest.Y); {
			case e.Kind == components.KindSheep && occupant == components.KindWolf:
				// A wolf already holds the cell; the sheep is lost with its litter.
				g.collector.RecordDeath(components.KindSheep, telemetry.CauseEaten)
				continue
			case occupant == components.KindGrass && !out.Ate:
				g.collector.RecordDeath(components.KindGrass, telemetry.CauseTrampled)
			}
			g.grid.Set(dest.X, dest.Y, e)
		}

		if out.Spawn != nil {
			g.spawns = append(g.spawns, out.Spawn)
		}
	}
}

// commitSpawns places queued offspring into cells that are still empty.
// Losing a cell to an earlier spawn or mover is silent.
func (g *Game) commitSpawns() {
	for _, s := range g.spawns {
		if !g.grid.InBounds(s.X, s.Y) || g.grid.Kind(s.X, s.Y) != components.KindEmpty {
			g.collector.RecordLostBirth(s.Kind)
			continue
		}
		g.grid.Set(s.X, s.Y, s)
		g.collector.RecordBirth(s.Kind)
	}
	clear(g.spawns)
	g.spawns = g.spawns[:0]
}

// checkExtinction latches the first empty population in priority order
// grass, sheep, wolves.
func (g *Game) checkExtinction() {
	for _, kind := range components.Kinds {
		if g.counts.Of(kind) > 0 {
			continue
		}
		g.extinct = kind
		g.state = StateEnded

		bm := telemetry.NewExtinctionBookmark(g.tick, kind)
		bm.LogBookmark()
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
		return
	}
}

// recordHistory appends this tick's populations and trims the oldest entries.
func (g *Game) recordHistory() {
	sample := components.NewSample(g.tick, g.counts)
	g.history = append(g.history, sample)
	if excess := len(g.history) - g.cfg.History.Cap; excess > 0 {
		g.history = append(g.history[:0], g.history[excess:]...)
	}
	if err := g.outputManager.WriteSample(sample); err != nil {
		slog.Error("failed to write history", "error", err)
	}
}

func deathCause(c systems.DeathCause) telemetry.Cause {
	if c == systems.CauseStarvation {
		return telemetry.CauseStarvation
	}
	return telemetry.CauseOldAge
}
