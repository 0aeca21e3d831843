package components

// Counts holds the number of living entities per kind.
type Counts struct {
	Grass  int `csv:"grass" yaml:"grass"`
	Sheep  int `csv:"sheep" yaml:"sheep"`
	Wolves int `csv:"wolves" yaml:"wolves"`
}

// Of returns the count for a single kind. Empty and unknown kinds yield 0.
func (c Counts) Of(k Kind) int {
	switch k {
	case KindGrass:
		return c.Grass
	case KindSheep:
		return c.Sheep
	case KindWolf:
		return c.Wolves
	}
	return 0
}

// Inc adds one to the count for k.
func (c *Counts) Inc(k Kind) {
	switch k {
	case KindGrass:
		c.Grass++
	case KindSheep:
		c.Sheep++
	case KindWolf:
		c.Wolves++
	}
}

// Total returns the number of occupied cells.
func (c Counts) Total() int {
	return c.Grass + c.Sheep + c.Wolves
}

// Sample is one history entry: the population at the end of a tick.
type Sample struct {
	Tick   int32 `csv:"tick"`
	Grass  int   `csv:"grass"`
	Sheep  int   `csv:"sheep"`
	Wolves int   `csv:"wolves"`
}

// NewSample builds a history entry from counts.
func NewSample(tick int32, c Counts) Sample {
	return Sample{Tick: tick, Grass: c.Grass, Sheep: c.Sheep, Wolves: c.Wolves}
}

// Counts returns the sample's populations.
func (s Sample) Counts() Counts {
	return Counts{Grass: s.Grass, Sheep: s.Sheep, Wolves: s.Wolves}
}
