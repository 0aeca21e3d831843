package systems

// Old-age window as fractions of life expectancy.
const (
	OldAgeOnset   = 0.8
	OldAgeCertain = 1.2
)

// DeathChance returns the probability that an entity of the given age dies of
// old age this tick. It is 0 below 80% of life expectancy, 1 at or above 120%,
// and rises linearly in between.
func DeathChance(age, lifeExpectancy int) float64 {
	if lifeExpectancy <= 0 {
		return 1
	}
	le := float64(lifeExpectancy)
	onset := OldAgeOnset * le
	certain := OldAgeCertain * le
	a := float64(age)
	switch {
	case a < onset:
		return 0
	case a >= certain:
		return 1
	default:
		return (a - onset) / (certain - onset)
	}
}

// DiesOfOldAge rolls against DeathChance. No random draw is consumed outside
// the probabilistic window.
func DiesOfOldAge(age, lifeExpectancy int, rng Rand) bool {
	chance := DeathChance(age, lifeExpectancy)
	if chance <= 0 {
		return false
	}
	if chance >= 1 {
		return true
	}
	return rng.Float64() < chance
}

// Starved reports whether an animal carrying ticksSinceLastMeal into this tick
// has gone too long without food.
func Starved(ticksSinceLastMeal, starvationTime int) bool {
	return ticksSinceLastMeal >= starvationTime
}
