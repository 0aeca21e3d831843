package telemetry

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/pasture/components"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`

	// Population counts at window end
	Grass  int `csv:"grass"`
	Sheep  int `csv:"sheep"`
	Wolves int `csv:"wolves"`

	// Births during window
	GrassBirths int `csv:"grass_births"`
	SheepBirths int `csv:"sheep_births"`
	WolfBirths  int `csv:"wolf_births"`
	LostBirths  int `csv:"lost_births"`

	// Deaths during window, by cause
	GrassOldAge   int `csv:"grass_old_age"`
	GrassEaten    int `csv:"grass_eaten"`
	GrassTrampled int `csv:"grass_trampled"`
	SheepOldAge   int `csv:"sheep_old_age"`
	SheepStarved  int `csv:"sheep_starved"`
	SheepEaten    int `csv:"sheep_eaten"`
	WolfOldAge    int `csv:"wolf_old_age"`
	WolfStarved   int `csv:"wolf_starved"`

	// Feeding
	SheepMeals int `csv:"sheep_meals"`
	WolfMeals  int `csv:"wolf_meals"`

	// Age distribution (sampled at window end)
	GrassAgeMean float64 `csv:"grass_age_mean"`
	SheepAgeMean float64 `csv:"sheep_age_mean"`
	SheepAgeStd  float64 `csv:"sheep_age_std"`
	WolfAgeMean  float64 `csv:"wolf_age_mean"`
	WolfAgeStd   float64 `csv:"wolf_age_std"`
}

// Counts returns the populations at window end.
func (s WindowStats) Counts() components.Counts {
	return components.Counts{Grass: s.Grass, Sheep: s.Sheep, Wolves: s.Wolves}
}

// ComputeAgeStats returns the mean and sample standard deviation of values.
// Fewer than two values give a zero deviation; no values give zeros.
func ComputeAgeStats(values []float64) (mean, std float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}

// SeriesStats summarizes one population series.
type SeriesStats struct {
	Mean float64 `yaml:"mean"`
	Std  float64 `yaml:"std"`
	Min  float64 `yaml:"min"`
	Max  float64 `yaml:"max"`
	CV   float64 `yaml:"cv"` // coefficient of variation, Std/Mean
}

// Summarize computes the statistics of a series. An empty series is all zeros.
func Summarize(values []float64) SeriesStats {
	if len(values) == 0 {
		return SeriesStats{}
	}
	mean, std := ComputeAgeStats(values)
	return SeriesStats{
		Mean: mean,
		Std:  std,
		Min:  floats.Min(values),
		Max:  floats.Max(values),
		CV:   CoefficientOfVariation(mean, std),
	}
}

// CoefficientOfVariation returns std/mean, or 0 when the mean is 0.
func CoefficientOfVariation(mean, std float64) float64 {
	if mean == 0 || math.IsNaN(mean) {
		return 0
	}
	return std / mean
}

// HistorySummary describes a run's population history.
type HistorySummary struct {
	Samples   int         `yaml:"samples"`
	FirstTick int32       `yaml:"first_tick"`
	LastTick  int32       `yaml:"last_tick"`
	Grass     SeriesStats `yaml:"grass"`
	Sheep     SeriesStats `yaml:"sheep"`
	Wolves    SeriesStats `yaml:"wolves"`
}

// SummarizeHistory computes per-kind statistics over history samples.
func SummarizeHistory(history []components.Sample) HistorySummary {
	if len(history) == 0 {
		return HistorySummary{}
	}
	grass := make([]float64, len(history))
	sheep := make([]float64, len(history))
	wolves := make([]float64, len(history))
	for i, s := range history {
		grass[i] = float64(s.Grass)
		sheep[i] = float64(s.Sheep)
		wolves[i] = float64(s.Wolves)
	}
	return HistorySummary{
		Samples:   len(history),
		FirstTick: history[0].Tick,
		LastTick:  history[len(history)-1].Tick,
		Grass:     Summarize(grass),
		Sheep:     Summarize(sheep),
		Wolves:    Summarize(wolves),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s SeriesStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("mean", s.Mean),
		slog.Float64("std", s.Std),
		slog.Float64("min", s.Min),
		slog.Float64("max", s.Max),
		slog.Float64("cv", s.CV),
	)
}

// LogValue implements slog.LogValuer for structured logging.
func (s HistorySummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("samples", s.Samples),
		slog.Int("first_tick", int(s.FirstTick)),
		slog.Int("last_tick", int(s.LastTick)),
		slog.Any("grass", s.Grass),
		slog.Any("sheep", s.Sheep),
		slog.Any("wolves", s.Wolves),
	)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Int("grass", s.Grass),
		slog.Int("sheep", s.Sheep),
		slog.Int("wolves", s.Wolves),
		slog.Int("grass_births", s.GrassBirths),
		slog.Int("sheep_births", s.SheepBirths),
		slog.Int("wolf_births", s.WolfBirths),
		slog.Int("lost_births", s.LostBirths),
		slog.Int("grass_old_age", s.GrassOldAge),
		slog.Int("grass_eaten", s.GrassEaten),
		slog.Int("grass_trampled", s.GrassTrampled),
		slog.Int("sheep_old_age", s.SheepOldAge),
		slog.Int("sheep_starved", s.SheepStarved),
		slog.Int("sheep_eaten", s.SheepEaten),
		slog.Int("wolf_old_age", s.WolfOldAge),
		slog.Int("wolf_starved", s.WolfStarved),
		slog.Int("sheep_meals", s.SheepMeals),
		slog.Int("wolf_meals", s.WolfMeals),
		slog.Float64("grass_age_mean", s.GrassAgeMean),
		slog.Float64("sheep_age_mean", s.SheepAgeMean),
		slog.Float64("sheep_age_std", s.SheepAgeStd),
		slog.Float64("wolf_age_mean", s.WolfAgeMean),
		slog.Float64("wolf_age_std", s.WolfAgeStd),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
