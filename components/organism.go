package components

// Entity is a grass tuft, sheep or wolf living on one grid cell.
// Grass ignores FoodEaten and TicksSinceLastMeal.
type Entity struct {
	Kind Kind
	X, Y int
	Age  int // ticks since creation

	FoodEaten          int // meals since last reproduction
	TicksSinceLastMeal int
}

// NewEntity creates a fresh entity of the given kind at (x, y).
func NewEntity(kind Kind, x, y int) *Entity {
	return &Entity{Kind: kind, X: x, Y: y}
}

// NewGrass creates a grass tuft at (x, y).
func NewGrass(x, y int) *Entity { return NewEntity(KindGrass, x, y) }

// NewSheep creates a sheep at (x, y).
func NewSheep(x, y int) *Entity { return NewEntity(KindSheep, x, y) }

// NewWolf creates a wolf at (x, y).
func NewWolf(x, y int) *Entity { return NewEntity(KindWolf, x, y) }

// Pos returns the entity's cell.
func (e *Entity) Pos() Point { return Point{X: e.X, Y: e.Y} }

// MoveTo updates the entity's recorded cell. The grid is not touched.
func (e *Entity) MoveTo(p Point) {
	e.X, e.Y = p.X, p.Y
}

// Eat records a successful meal.
func (e *Entity) Eat() {
	e.FoodEaten++
	e.TicksSinceLastMeal = 0
}
