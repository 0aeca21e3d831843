// Package components defines the data records stored on the pasture grid.
package components

// Kind identifies what occupies a grid cell.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindGrass
	KindSheep
	KindWolf
)

// Kinds lists the living kinds in processing order.
var Kinds = [...]Kind{KindGrass, KindSheep, KindWolf}

// String returns the lowercase kind name used in logs and CSV output.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindGrass:
		return "grass"
	case KindSheep:
		return "sheep"
	case KindWolf:
		return "wolves"
	default:
		return "unknown"
	}
}

// MarshalText lets kinds appear by name in YAML and CSV.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
