package systems

import "github.com/pthm-cable/pasture/config"

// scriptedRand replays queued draws. An exhausted Float64 queue returns 0.99
// (survive most rolls); an exhausted IntN queue returns 0.
type scriptedRand struct {
	floats []float64
	ints   []int

	floatDraws int
	intDraws   int
}

func (r *scriptedRand) Float64() float64 {
	r.floatDraws++
	if len(r.floats) == 0 {
		return 0.99
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) IntN(n int) int {
	r.intDraws++
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

// testConfig returns defaults with long lives so only the behavior under
// test can kill an entity.
func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Grass.LifeExpectancy = 1000
	cfg.Grass.SpreadRate = 0
	cfg.Grass.SpreadRadius = 1
	cfg.Sheep.LifeExpectancy = 1000
	cfg.Sheep.StarvationTime = 10
	cfg.Sheep.BreedThreshold = 3
	cfg.Sheep.GrazingRadius = 5
	cfg.Wolf.LifeExpectancy = 1000
	cfg.Wolf.StarvationTime = 10
	cfg.Wolf.BreedThreshold = 3
	cfg.Wolf.HuntingRadius = 5
	return cfg
}
