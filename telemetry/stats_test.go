package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/pasture/components"
)

func TestComputeAgeStats(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantMean float64
		wantStd  float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{7}, 7, 0},
		{"spread", []float64{2, 4, 6}, 4, 2},
		{"constant", []float64{3, 3, 3, 3}, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std := ComputeAgeStats(tt.values)
			if math.Abs(mean-tt.wantMean) > 1e-9 || math.Abs(std-tt.wantStd) > 1e-9 {
				t.Errorf("ComputeAgeStats(%v) = %v, %v; want %v, %v", tt.values, mean, std, tt.wantMean, tt.wantStd)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{2, 4, 6})
	if s.Min != 2 || s.Max != 6 || s.Mean != 4 {
		t.Errorf("Summarize = %+v", s)
	}
	if math.Abs(s.CV-0.5) > 1e-9 {
		t.Errorf("CV = %v, want 0.5", s.CV)
	}

	if (Summarize(nil) != SeriesStats{}) {
		t.Error("empty series should summarize to zeros")
	}
	if CoefficientOfVariation(0, 3) != 0 {
		t.Error("zero mean should give zero CV")
	}
}

func TestSummarizeHistory(t *testing.T) {
	history := []components.Sample{
		{Tick: 1, Grass: 10, Sheep: 4, Wolves: 1},
		{Tick: 2, Grass: 20, Sheep: 6, Wolves: 1},
		{Tick: 3, Grass: 30, Sheep: 8, Wolves: 1},
	}
	s := SummarizeHistory(history)
	if s.Samples != 3 || s.FirstTick != 1 || s.LastTick != 3 {
		t.Errorf("summary header = %+v", s)
	}
	if s.Grass.Mean != 20 || s.Sheep.Max != 8 || s.Wolves.Std != 0 {
		t.Errorf("series = grass %+v sheep %+v wolves %+v", s.Grass, s.Sheep, s.Wolves)
	}

	if (SummarizeHistory(nil) != HistorySummary{}) {
		t.Error("empty history should summarize to zeros")
	}
}

func TestCollector(t *testing.T) {
	c := NewCollector(10)
	if c.WindowTicks() != 10 {
		t.Fatalf("WindowTicks = %d", c.WindowTicks())
	}
	if c.ShouldFlush(9) {
		t.Error("should not flush before the window closes")
	}
	if !c.ShouldFlush(10) {
		t.Error("should flush when the window closes")
	}

	c.RecordBirth(components.KindSheep)
	c.RecordBirth(components.KindSheep)
	c.RecordBirth(components.KindGrass)
	c.RecordLostBirth(components.KindWolf)
	c.RecordMeal(components.KindWolf)
	c.RecordDeath(components.KindSheep, CauseEaten)
	c.RecordDeath(components.KindSheep, CauseStarvation)
	c.RecordDeath(components.KindWolf, CauseOldAge)
	c.RecordDeath(components.KindGrass, CauseTrampled)

	counts := components.Counts{Grass: 5, Sheep: 3, Wolves: 1}
	stats := c.Flush(10, counts, AgeSamples{Sheep: []float64{2, 4, 6}})

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 10 {
		t.Errorf("window = %d..%d", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.Counts() != counts {
		t.Errorf("counts = %+v", stats.Counts())
	}
	if stats.SheepBirths != 2 || stats.GrassBirths != 1 || stats.LostBirths != 1 {
		t.Errorf("births = %+v", stats)
	}
	if stats.SheepEaten != 1 || stats.SheepStarved != 1 || stats.WolfOldAge != 1 || stats.GrassTrampled != 1 {
		t.Errorf("deaths = %+v", stats)
	}
	if stats.WolfMeals != 1 || stats.SheepMeals != 0 {
		t.Errorf("meals = wolf %d sheep %d", stats.WolfMeals, stats.SheepMeals)
	}
	if stats.SheepAgeMean != 4 || stats.SheepAgeStd != 2 {
		t.Errorf("sheep ages = %v ± %v", stats.SheepAgeMean, stats.SheepAgeStd)
	}

	next := c.Flush(20, counts, AgeSamples{})
	if next.WindowStartTick != 10 || next.SheepBirths != 0 || next.WolfMeals != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
}
