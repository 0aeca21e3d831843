package systems

import (
	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
)

// UpdateGrass ages a grass tuft and may seed a new tuft nearby.
//
// With probability SpreadRate/100 the tuft picks a random empty cell within
// SpreadRadius (Manhattan) and reports a new tuft there as Spawn.
func UpdateGrass(e *components.Entity, g *Grid, cfg config.GrassConfig, rng Rand) Outcome {
	if cause, ok := age(e, cfg.LifeExpectancy, 0, rng); !ok {
		return died(cause)
	}

	out := Outcome{Alive: true}
	chance := cfg.SpreadRate / 100
	if chance <= 0 || rng.Float64() >= chance {
		return out
	}
	if p, ok := g.RandomEmptyInRadius(rng, e.X, e.Y, cfg.SpreadRadius); ok {
		out.Spawn = components.NewGrass(p.X, p.Y)
	}
	return out
}
