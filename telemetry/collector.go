package telemetry

import "github.com/pthm-cable/pasture/components"

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks int32

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	births   kindCounters
	oldAge   kindCounters
	starved  kindCounters
	eaten    kindCounters
	trampled int
	meals    kindCounters
	orphans  kindCounters // offspring whose cell was taken before commit
}

// NewCollector creates a collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int32(windowTicks)}
}

// RecordBirth records an offspring placed on the grid.
func (c *Collector) RecordBirth(kind components.Kind) {
	c.births.inc(kind)
}

// RecordLostBirth records an offspring dropped because its cell filled up first.
func (c *Collector) RecordLostBirth(kind components.Kind) {
	c.orphans.inc(kind)
}

// RecordMeal records an animal eating.
func (c *Collector) RecordMeal(eater components.Kind) {
	c.meals.inc(eater)
}

// RecordDeath records an entity of kind leaving the grid.
func (c *Collector) RecordDeath(kind components.Kind, cause Cause) {
	switch cause {
	case CauseOldAge:
		c.oldAge.inc(kind)
	case CauseStarvation:
		c.starved.inc(kind)
	case CauseEaten:
		c.eaten.inc(kind)
	case CauseTrampled:
		c.trampled++
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// AgeSamples holds the ages of living entities at window end, by kind.
type AgeSamples struct {
	Grass  []float64
	Sheep  []float64
	Wolves []float64
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, counts components.Counts, ages AgeSamples) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Grass:  counts.Grass,
		Sheep:  counts.Sheep,
		Wolves: counts.Wolves,

		GrassBirths: c.births.get(components.KindGrass),
		SheepBirths: c.births.get(components.KindSheep),
		WolfBirths:  c.births.get(components.KindWolf),
		LostBirths:  c.orphans.get(components.KindGrass) + c.orphans.get(components.KindSheep) + c.orphans.get(components.KindWolf),

		GrassOldAge:   c.oldAge.get(components.KindGrass),
		GrassEaten:    c.eaten.get(components.KindGrass),
		GrassTrampled: c.trampled,
		SheepOldAge:   c.oldAge.get(components.KindSheep),
		SheepStarved:  c.starved.get(components.KindSheep),
		SheepEaten:    c.eaten.get(components.KindSheep),
		WolfOldAge:    c.oldAge.get(components.KindWolf),
		WolfStarved:   c.starved.get(components.KindWolf),

		SheepMeals: c.meals.get(components.KindSheep),
		WolfMeals:  c.meals.get(components.KindWolf),
	}

	stats.GrassAgeMean, _ = ComputeAgeStats(ages.Grass)
	stats.SheepAgeMean, stats.SheepAgeStd = ComputeAgeStats(ages.Sheep)
	stats.WolfAgeMean, stats.WolfAgeStd = ComputeAgeStats(ages.Wolves)

	// Reset for next window
	*c = Collector{windowTicks: c.windowTicks, windowStartTick: currentTick}

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int32 {
	return c.windowTicks
}
