package systems

import (
	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
)

// DeathCause records why an update ended an entity's life.
type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CauseOldAge
	CauseStarvation
)

// String returns the cause name used in telemetry.
func (c DeathCause) String() string {
	switch c {
	case CauseOldAge:
		return "old_age"
	case CauseStarvation:
		return "starvation"
	default:
		return "none"
	}
}

// Outcome is what a single entity update reports back to the engine.
// The entity itself carries its new position; Outcome carries side effects.
type Outcome struct {
	Alive bool
	Cause DeathCause

	// Spawn is an offspring awaiting placement at its recorded cell.
	// The engine commits it only if that cell is still empty.
	Spawn *components.Entity

	// Ate is set when the entity consumed the occupant of AteAt.
	Ate   bool
	AteAt components.Point
}

func died(cause DeathCause) Outcome {
	return Outcome{Alive: false, Cause: cause}
}

// age advances the shared counters and applies the old-age and starvation
// checks. Grass passes starvationTime <= 0 to skip hunger.
func age(e *components.Entity, lifeExpectancy, starvationTime int, rng Rand) (DeathCause, bool) {
	e.Age++
	if DiesOfOldAge(e.Age, lifeExpectancy, rng) {
		return CauseOldAge, false
	}
	if starvationTime > 0 {
		if Starved(e.TicksSinceLastMeal, starvationTime) {
			return CauseStarvation, false
		}
		e.TicksSinceLastMeal++
	}
	return CauseNone, true
}

// stepToward returns the cell one king-move from `from` in the direction of `to`.
func stepToward(from, to components.Point) components.Point {
	return from.Add(sign(to.X-from.X), sign(to.Y-from.Y))
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// breed consumes the breed threshold after a meal and returns the offspring,
// if any cell can take it. The vacated origin is preferred; otherwise a random
// empty neighbor of the animal's new cell.
func breed(e *components.Entity, origin components.Point, threshold int, g *Grid, rng Rand) *components.Entity {
	if e.FoodEaten < threshold {
		return nil
	}
	e.FoodEaten = 0

	if e.Pos() != origin && g.InBounds(origin.X, origin.Y) {
		// The parent still occupies origin until the engine clears it.
		occupant := g.Get(origin.X, origin.Y)
		if occupant == nil || occupant == e {
			return components.NewEntity(e.Kind, origin.X, origin.Y)
		}
	}
	if p, ok := g.RandomEmptyNeighbor(rng, e.X, e.Y); ok {
		return components.NewEntity(e.Kind, p.X, p.Y)
	}
	return nil
}

// Update dispatches to the kind-specific rule.
func Update(e *components.Entity, g *Grid, cfg *config.Config, rng Rand) Outcome {
	switch e.Kind {
	case components.KindGrass:
		return UpdateGrass(e, g, cfg.Grass, rng)
	case components.KindSheep:
		return UpdateSheep(e, g, cfg.Sheep, rng)
	case components.KindWolf:
		return UpdateWolf(e, g, cfg.Wolf, rng)
	default:
		return died(CauseNone)
	}
}
