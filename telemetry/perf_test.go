package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_Empty(t *testing.T) {
	p := NewPerfCollector(0)
	s := p.Stats()
	if s.AvgTickDuration != 0 || s.PhaseAvg == nil || s.PhasePct == nil {
		t.Errorf("empty stats = %+v", s)
	}
}

func TestPerfCollector_RecordsPhases(t *testing.T) {
	p := NewPerfCollector(4)
	for i := 0; i < 6; i++ {
		p.StartTick()
		for _, phase := range Phases {
			p.StartPhase(phase)
		}
		time.Sleep(time.Millisecond)
		p.EndTick()
	}

	s := p.Stats()
	if s.AvgTickDuration <= 0 || s.MinTickDuration > s.MaxTickDuration {
		t.Errorf("tick durations = avg %v min %v max %v", s.AvgTickDuration, s.MinTickDuration, s.MaxTickDuration)
	}
	if _, ok := s.PhaseAvg[PhaseTelemetry]; !ok {
		t.Error("missing telemetry phase")
	}
	if s.PhasePct[PhaseTelemetry] <= 0 {
		t.Errorf("telemetry pct = %v, want > 0 since it held the sleep", s.PhasePct[PhaseTelemetry])
	}

	row := s.ToCSV(30)
	if row.WindowEnd != 30 || row.TelemetryPct != s.PhasePct[PhaseTelemetry] {
		t.Errorf("csv row = %+v", row)
	}
}
