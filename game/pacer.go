package game

import "time"

// Pacer spaces Step calls at a steady ticks-per-second rate for realtime runs.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewPacer targets tps ticks per second. Non-positive rates fall back to 10.
func NewPacer(tps int) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetTPS(tps)
	p.accumulator = p.step
	return p
}

// SetTPS changes the tick rate between calls to Due.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	p.step = time.Second / time.Duration(tps)
}

// Interval returns the time between ticks.
func (p *Pacer) Interval() time.Duration { return p.step }

// Due reports whether the simulation should advance by one tick.
func (p *Pacer) Due() bool {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}
