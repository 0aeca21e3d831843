package systems

import (
	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
)

// UpdateWolf runs one tick of wolf behavior.
//
// A wolf steps toward the nearest sheep within HuntingRadius and eats it when
// the step lands on a sheep. Without prey in range it wanders to a random
// neighbor that is empty, grassy or holds a sheep, eating the sheep if one is
// picked. Wolves walk over grass (the grass under them is lost) and are blocked
// only by other wolves and the grid edge.
func UpdateWolf(e *components.Entity, g *Grid, cfg config.WolfConfig, rng Rand) Outcome {
	if cause, ok := age(e, cfg.LifeExpectancy, cfg.StarvationTime, rng); !ok {
		return died(cause)
	}

	out := Outcome{Alive: true}
	origin := e.Pos()

	if target, _, found := g.FindClosestInRadius(origin.X, origin.Y, cfg.HuntingRadius, components.KindSheep); found {
		step := stepToward(origin, target.Pos())
		if g.InBounds(step.X, step.Y) {
			switch g.Kind(step.X, step.Y) {
			case components.KindSheep:
				e.MoveTo(step)
				out.Ate, out.AteAt = true, step
			case components.KindEmpty, components.KindGrass:
				e.MoveTo(step)
			}
		}
	} else if p, ok := randomWolfNeighbor(g, rng, origin); ok {
		e.MoveTo(p)
		if g.Kind(p.X, p.Y) == components.KindSheep {
			out.Ate, out.AteAt = true, p
		}
	}

	if out.Ate {
		e.Eat()
		out.Spawn = breed(e, origin, cfg.BreedThreshold, g, rng)
	}
	return out
}

// randomWolfNeighbor picks uniformly among the 8-neighbors not held by a wolf.
func randomWolfNeighbor(g *Grid, rng Rand, origin components.Point) (components.Point, bool) {
	var open []components.Point
	for _, p := range g.Neighbors(origin.X, origin.Y, true) {
		if g.Kind(p.X, p.Y) != components.KindWolf {
			open = append(open, p)
		}
	}
	if len(open) == 0 {
		return components.Point{}, false
	}
	return pick(rng, open), true
}
