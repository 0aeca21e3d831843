package systems

import (
	"math"
	"testing"
)

func TestDeathChance(t *testing.T) {
	tests := []struct {
		name string
		age  int
		le   int
		want float64
	}{
		{"young", 10, 100, 0},
		{"just below onset", 79, 100, 0},
		{"onset", 80, 100, 0},
		{"at life expectancy", 100, 100, 0.5},
		{"late", 110, 100, 0.75},
		{"just below certain", 119, 100, 0.975},
		{"certain", 120, 100, 1},
		{"past certain", 500, 100, 1},
		{"no life expectancy", 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeathChance(tt.age, tt.le)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DeathChance(%d, %d) = %v, want %v", tt.age, tt.le, got, tt.want)
			}
		})
	}
}

func TestDiesOfOldAge_DrawsOnlyInsideWindow(t *testing.T) {
	rng := &scriptedRand{}
	if DiesOfOldAge(10, 100, rng) {
		t.Error("young entity died")
	}
	if !DiesOfOldAge(130, 100, rng) {
		t.Error("entity past 120% survived")
	}
	if rng.floatDraws != 0 {
		t.Errorf("expected no draws outside the window, got %d", rng.floatDraws)
	}

	tests := []struct {
		draw float64
		dies bool
	}{
		{0.4, true},
		{0.5, false},
		{0.6, false},
	}
	for _, tt := range tests {
		rng := &scriptedRand{floats: []float64{tt.draw}}
		if got := DiesOfOldAge(100, 100, rng); got != tt.dies {
			t.Errorf("draw %v: dies = %v, want %v", tt.draw, got, tt.dies)
		}
		if rng.floatDraws != 1 {
			t.Errorf("draw %v: expected exactly one draw, got %d", tt.draw, rng.floatDraws)
		}
	}
}

func TestStarved(t *testing.T) {
	tests := []struct {
		ticks, starvation int
		want              bool
	}{
		{0, 5, false},
		{4, 5, false},
		{5, 5, true},
		{9, 5, true},
	}
	for _, tt := range tests {
		if got := Starved(tt.ticks, tt.starvation); got != tt.want {
			t.Errorf("Starved(%d, %d) = %v, want %v", tt.ticks, tt.starvation, got, tt.want)
		}
	}
}
