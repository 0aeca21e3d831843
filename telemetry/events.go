// Package telemetry provides population statistics, bookmarks and run output for the pasture simulation.
package telemetry

import "github.com/pthm-cable/pasture/components"

// Cause classifies how an entity left the grid.
type Cause uint8

const (
	CauseOldAge Cause = iota
	CauseStarvation
	CauseEaten    // grass grazed by a sheep, or a sheep caught by a wolf
	CauseTrampled // grass a wolf walked onto
)

// kindCounters holds one counter per living kind.
type kindCounters [len(components.Kinds)]int

func (k *kindCounters) inc(kind components.Kind) {
	if i := int(kind) - 1; i >= 0 && i < len(k) {
		k[i]++
	}
}

func (k *kindCounters) get(kind components.Kind) int {
	if i := int(kind) - 1; i >= 0 && i < len(k) {
		return k[i]
	}
	return 0
}
