// Package systems implements the pasture grid and the per-kind update rules.
package systems

import (
	"fmt"

	"github.com/pthm-cable/pasture/components"
)

// DefaultSampleAttempts bounds rejection sampling in the random placement helpers.
const DefaultSampleAttempts = 32

// Grid is the bounded W×H world. A dense kind layer answers occupancy
// questions in O(1); full entity records live in a sparse map keyed by flat
// index, so empty cells cost one byte.
//
// Invariant: kinds[i] == KindEmpty exactly when records has no entry for i.
type Grid struct {
	w, h    int
	kinds   []components.Kind
	records map[int]*components.Entity
}

// NewGrid allocates an empty grid. Non-positive dimensions are clamped to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{
		w:       w,
		h:       h,
		kinds:   make([]components.Kind, w*h),
		records: make(map[int]*components.Entity),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Kinds exposes the dense row-major kind layer for renderers. Callers must not modify it.
func (g *Grid) Kinds() []components.Kind { return g.kinds }

// index returns the flat slice index for (x, y). Callers check bounds first.
func (g *Grid) index(x, y int) int { return y*g.w + x }

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Kind returns what occupies (x, y). Out-of-bounds cells read as empty.
func (g *Grid) Kind(x, y int) components.Kind {
	if !g.InBounds(x, y) {
		return components.KindEmpty
	}
	return g.kinds[g.index(x, y)]
}

// Get returns the entity at (x, y), or nil when the cell is empty or off the grid.
func (g *Grid) Get(x, y int) *components.Entity {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.records[g.index(x, y)]
}

// Set places e at (x, y), replacing any occupant, and stamps e's position.
// A nil entity clears the cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, e *components.Entity) {
	if !g.InBounds(x, y) {
		return
	}
	idx := g.index(x, y)
	if e == nil || e.Kind == components.KindEmpty {
		g.kinds[idx] = components.KindEmpty
		delete(g.records, idx)
		return
	}
	e.X, e.Y = x, y
	g.kinds[idx] = e.Kind
	g.records[idx] = e
}

// Clear empties (x, y).
func (g *Grid) Clear(x, y int) {
	g.Set(x, y, nil)
}

// Reset empties every cell.
func (g *Grid) Reset() {
	clear(g.kinds)
	clear(g.records)
}

// neighborOffsets lists the 8 surrounding offsets, orthogonal ones first.
var neighborOffsets = [8][2]int{
	{0, -1}, {-1, 0}, {1, 0}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// Neighbors returns the in-bounds cells around (x, y): the 8-neighborhood
// with diagonals, otherwise the 4 orthogonal cells. Edge cells get fewer.
func (g *Grid) Neighbors(x, y int, diagonals bool) []components.Point {
	offsets := neighborOffsets[:4]
	if diagonals {
		offsets = neighborOffsets[:]
	}
	out := make([]components.Point, 0, len(offsets))
	for _, o := range offsets {
		nx, ny := x+o[0], y+o[1]
		if g.InBounds(nx, ny) {
			out = append(out, components.Point{X: nx, Y: ny})
		}
	}
	return out
}

// NeighborsOfKind returns the 8-neighbors of (x, y) holding the given kind.
func (g *Grid) NeighborsOfKind(x, y int, kind components.Kind) []components.Point {
	var out []components.Point
	for _, p := range g.Neighbors(x, y, true) {
		if g.kinds[g.index(p.X, p.Y)] == kind {
			out = append(out, p)
		}
	}
	return out
}

// EmptyNeighbors returns the empty 8-neighbors of (x, y).
func (g *Grid) EmptyNeighbors(x, y int) []components.Point {
	return g.NeighborsOfKind(x, y, components.KindEmpty)
}

// FindInRadius returns the entities of kind within Manhattan distance r of
// (x, y), excluding the center, in scan order.
func (g *Grid) FindInRadius(x, y, r int, kind components.Kind) []*components.Entity {
	var out []*components.Entity
	g.scanRadius(x, y, r, kind, func(e *components.Entity, _ int) bool {
		out = append(out, e)
		return true
	})
	return out
}

// FindClosestInRadius returns the nearest entity of kind within Manhattan
// distance r of (x, y) and its distance. Ties go to the first cell in scan
// order: rows from dy=-r to r, and within a row dx from -r to r.
func (g *Grid) FindClosestInRadius(x, y, r int, kind components.Kind) (*components.Entity, int, bool) {
	var best *components.Entity
	bestDist := r + 1
	g.scanRadius(x, y, r, kind, func(e *components.Entity, d int) bool {
		if d < bestDist {
			best, bestDist = e, d
			// Nothing can beat an adjacent cell.
			return d > 1
		}
		return true
	})
	if best == nil {
		return nil, 0, false
	}
	return best, bestDist, true
}

// scanRadius visits the (2r+1)² box around (x, y) in row-major order and calls
// fn for every cell of kind within Manhattan distance r. Returning false stops the scan.
func (g *Grid) scanRadius(x, y, r int, kind components.Kind, fn func(e *components.Entity, dist int) bool) {
	if r <= 0 {
		return
	}
	for dy := -r; dy <= r; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.h {
			continue
		}
		ady := dy
		if ady < 0 {
			ady = -ady
		}
		for dx := -r; dx <= r; dx++ {
			nx := x + dx
			if nx < 0 || nx >= g.w {
				continue
			}
			if dx == 0 && dy == 0 {
				continue
			}
			adx := dx
			if adx < 0 {
				adx = -adx
			}
			d := adx + ady
			if d > r {
				continue
			}
			idx := g.index(nx, ny)
			if g.kinds[idx] != kind {
				continue
			}
			if !fn(g.records[idx], d) {
				return
			}
		}
	}
}

// RandomEmptyPosition samples up to maxAttempts uniform cells and returns the
// first empty one.
func (g *Grid) RandomEmptyPosition(rng Rand, maxAttempts int) (components.Point, bool) {
	for i := 0; i < maxAttempts; i++ {
		x, y := rng.IntN(g.w), rng.IntN(g.h)
		if g.kinds[g.index(x, y)] == components.KindEmpty {
			return components.Point{X: x, Y: y}, true
		}
	}
	return components.Point{}, false
}

// RandomEmptyNeighbor returns a uniformly chosen empty 8-neighbor of (x, y).
func (g *Grid) RandomEmptyNeighbor(rng Rand, x, y int) (components.Point, bool) {
	empty := g.EmptyNeighbors(x, y)
	if len(empty) == 0 {
		return components.Point{}, false
	}
	return pick(rng, empty), true
}

// RandomEmptyInRadius returns a random empty cell within Manhattan distance r
// of (cx, cy), excluding the center. Radius 1 picks directly among the empty
// orthogonal neighbors; larger radii use rejection sampling over the box.
func (g *Grid) RandomEmptyInRadius(rng Rand, cx, cy, r int) (components.Point, bool) {
	if r <= 0 {
		return components.Point{}, false
	}
	if r == 1 {
		var empty []components.Point
		for _, p := range g.Neighbors(cx, cy, false) {
			if g.kinds[g.index(p.X, p.Y)] == components.KindEmpty {
				empty = append(empty, p)
			}
		}
		if len(empty) == 0 {
			return components.Point{}, false
		}
		return pick(rng, empty), true
	}

	span := 2*r + 1
	for i := 0; i < DefaultSampleAttempts; i++ {
		dx := rng.IntN(span) - r
		dy := rng.IntN(span) - r
		if dx == 0 && dy == 0 {
			continue
		}
		p := components.Point{X: cx + dx, Y: cy + dy}
		if p.Manhattan(components.Point{X: cx, Y: cy}) > r || !g.InBounds(p.X, p.Y) {
			continue
		}
		if g.kinds[g.index(p.X, p.Y)] == components.KindEmpty {
			return p, true
		}
	}
	return components.Point{}, false
}

// EmptyPositions lists every empty cell in row-major order.
func (g *Grid) EmptyPositions() []components.Point {
	out := make([]components.Point, 0, len(g.kinds)-len(g.records))
	for i, k := range g.kinds {
		if k == components.KindEmpty {
			out = append(out, components.Point{X: i % g.w, Y: i / g.w})
		}
	}
	return out
}

// Counts tallies the dense layer.
func (g *Grid) Counts() components.Counts {
	var c components.Counts
	for _, k := range g.kinds {
		c.Inc(k)
	}
	return c
}

// Entities returns every entity in row-major order.
func (g *Grid) Entities() []*components.Entity {
	out := make([]*components.Entity, 0, len(g.records))
	for i, k := range g.kinds {
		if k != components.KindEmpty {
			out = append(out, g.records[i])
		}
	}
	return out
}

// EntitiesOfKind returns every entity of kind in row-major order.
func (g *Grid) EntitiesOfKind(kind components.Kind) []*components.Entity {
	var out []*components.Entity
	for i, k := range g.kinds {
		if k == kind {
			out = append(out, g.records[i])
		}
	}
	return out
}

// CheckInvariants verifies that the dense and sparse layers agree and that
// every record knows its own cell and kind.
func (g *Grid) CheckInvariants() error {
	occupied := 0
	for i, k := range g.kinds {
		e, ok := g.records[i]
		x, y := i%g.w, i/g.w
		if k == components.KindEmpty {
			if ok {
				return fmt.Errorf("cell (%d,%d): empty kind but record present", x, y)
			}
			continue
		}
		occupied++
		if !ok || e == nil {
			return fmt.Errorf("cell (%d,%d): kind %s but no record", x, y, k)
		}
		if e.Kind != k {
			return fmt.Errorf("cell (%d,%d): kind %s but record is %s", x, y, k, e.Kind)
		}
		if e.X != x || e.Y != y {
			return fmt.Errorf("cell (%d,%d): record claims (%d,%d)", x, y, e.X, e.Y)
		}
		if e.Age < 0 || e.FoodEaten < 0 || e.TicksSinceLastMeal < 0 {
			return fmt.Errorf("cell (%d,%d): negative counters %+v", x, y, *e)
		}
	}
	if occupied != len(g.records) {
		return fmt.Errorf("%d occupied cells but %d records", occupied, len(g.records))
	}
	return nil
}
