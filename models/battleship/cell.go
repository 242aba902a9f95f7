package battleship

// CellState is the externally visible firing state of a square.
type CellState uint8

const (
	CellStateNotFired CellState = iota
	CellStateHit
	CellStateMiss
)

func (cs CellState) String() string {
	switch cs {
	case CellStateNotFired:
		return "not_fired"
	case CellStateHit:
		return "hit"
	case CellStateMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Symbol is the one-character debug rendering of the state.
func (cs CellState) Symbol() byte {
	switch cs {
	case CellStateHit:
		return 'X'
	case CellStateMiss:
		return 'o'
	default:
		return '.'
	}
}

const noShip = -1

// Cell is one square of a Grid. The ship backlink is an index into the
// owning grid's ship list rather than a pointer.
type Cell struct {
	coordinates Coordinates
	state       CellState
	shipIdx     int
}

func newCell(x, y int) Cell {
	return Cell{
		coordinates: NewCoordinates(x, y),
		state:       CellStateNotFired,
		shipIdx:     noShip,
	}
}

func (c Cell) Coordinates() Coordinates {
	return c.coordinates
}

func (c Cell) State() CellState {
	return c.state
}

func (c Cell) HasShip() bool {
	return c.shipIdx != noShip
}

func (c Cell) IsFired() bool {
	return c.state != CellStateNotFired
}

func (c *Cell) reset() {
	c.state = CellStateNotFired
	c.shipIdx = noShip
}
