package spiralgrid

// CellState tags what a grid cell holds.
type CellState uint8

const (
	// Empty cells were never written; they receive filler on serialization.
	Empty CellState = iota
	// Filled cells hold a message or encoded byte.
	Filled
	// Consumed cells were already read back by a decode traversal.
	Consumed
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Filled:
		return "filled"
	case Consumed:
		return "consumed"
	default:
		return "unknown"
	}
}

// Cell is one grid position.
type Cell struct {
	State CellState
	// Zero for Empty cells.
	Char byte
}
