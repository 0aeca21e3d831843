package game

import (
	"log/slog"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/telemetry"
)

// flushTelemetry closes the stats window when it is due (or when the run
// just ended) and handles bookmarks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) && g.state != StateEnded {
		return
	}

	stats := g.collector.Flush(g.tick, g.counts, g.sampleAges())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

// sampleAges collects living entity ages for the window's age statistics.
func (g *Game) sampleAges() telemetry.AgeSamples {
	var ages telemetry.AgeSamples
	for _, e := range g.grid.Entities() {
		switch e.Kind {
		case components.KindGrass:
			ages.Grass = append(ages.Grass, float64(e.Age))
		case components.KindSheep:
			ages.Sheep = append(ages.Sheep, float64(e.Age))
		case components.KindWolf:
			ages.Wolves = append(ages.Wolves, float64(e.Age))
		}
	}
	return ages
}

// Summary computes statistics over the in-memory history.
func (g *Game) Summary() telemetry.HistorySummary {
	return telemetry.SummarizeHistory(g.history)
}
