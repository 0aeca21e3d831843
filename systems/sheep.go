package systems

import (
	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
)

// UpdateSheep runs one tick of sheep behavior.
//
// Priority: eat a random adjacent grass cell; otherwise step toward the
// closest grass within GrazingRadius (eating it if the step lands on grass);
// otherwise wander to a random empty neighbor. Sheep never enter cells held by
// sheep or wolves. The sheep's X/Y are updated; the engine moves the record.
func UpdateSheep(e *components.Entity, g *Grid, cfg config.SheepConfig, rng Rand) Outcome {
	if cause, ok := age(e, cfg.LifeExpectancy, cfg.StarvationTime, rng); !ok {
		return died(cause)
	}

	out := Outcome{Alive: true}
	origin := e.Pos()

	if grass := g.NeighborsOfKind(origin.X, origin.Y, components.KindGrass); len(grass) > 0 {
		p := pick(rng, grass)
		e.MoveTo(p)
		out.Ate, out.AteAt = true, p
	} else if target, _, found := g.FindClosestInRadius(origin.X, origin.Y, cfg.GrazingRadius, components.KindGrass); found {
		step := stepToward(origin, target.Pos())
		if g.InBounds(step.X, step.Y) {
			switch g.Kind(step.X, step.Y) {
			case components.KindGrass:
				e.MoveTo(step)
				out.Ate, out.AteAt = true, step
			case components.KindEmpty:
				e.MoveTo(step)
			}
		}
	} else if p, ok := g.RandomEmptyNeighbor(rng, origin.X, origin.Y); ok {
		e.MoveTo(p)
	}

	if out.Ate {
		e.Eat()
		out.Spawn = breed(e, origin, cfg.BreedThreshold, g, rng)
	}
	return out
}
