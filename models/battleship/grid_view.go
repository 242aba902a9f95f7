package battleship

import (
	"fmt"

	cerr "github.com/saeidalz13/battleship-ai/internal/error"
)

// GridView is an immutable snapshot of an opponent grid as the shooter sees
// it: firing state per cell and, for hits, whether the ship is already sunk.
// Identity of unsunk ships is never exposed.
type GridView struct {
	width  int
	height int
	states []CellState
	sunk   []bool
}

// Symbols accepted by ParseGridView.
const (
	ViewSymbolNotFired = '.'
	ViewSymbolMiss     = 'o'
	ViewSymbolHit      = 'X'
	ViewSymbolSunk     = '#'
)

// ParseGridView builds a view from rows of symbols, one string per row:
// '.' not fired, 'o' miss, 'X' hit on a live ship, '#' hit on a sunk ship.
func ParseGridView(rows ...string) (GridView, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return GridView{}, cerr.ErrGridSize(0, len(rows))
	}

	width, height := len(rows[0]), len(rows)
	v := GridView{
		width:  width,
		height: height,
		states: make([]CellState, width*height),
		sunk:   make([]bool, width*height),
	}
	for y, row := range rows {
		if len(row) != width {
			return GridView{}, fmt.Errorf("%w: row %d has %d cells, expected %d", cerr.ErrInvalidGridSize, y, len(row), width)
		}
		for x := 0; x < width; x++ {
			i := y*width + x
			switch row[x] {
			case ViewSymbolNotFired:
				v.states[i] = CellStateNotFired
			case ViewSymbolMiss:
				v.states[i] = CellStateMiss
			case ViewSymbolHit:
				v.states[i] = CellStateHit
			case ViewSymbolSunk:
				v.states[i] = CellStateHit
				v.sunk[i] = true
			default:
				return GridView{}, fmt.Errorf("unknown grid symbol %q at %d,%d", row[x], x, y)
			}
		}
	}
	return v, nil
}

func (v GridView) Width() int  { return v.width }
func (v GridView) Height() int { return v.height }

func (v GridView) InBounds(x, y int) bool {
	return x >= 0 && x < v.width && y >= 0 && y < v.height
}

func (v GridView) State(x, y int) (CellState, error) {
	if !v.InBounds(x, y) {
		return CellStateNotFired, cerr.ErrXorYOutOfGridBound(x, y)
	}
	return v.states[y*v.width+x], nil
}

func (v GridView) IsNotFired(x, y int) bool {
	return v.InBounds(x, y) && v.states[y*v.width+x] == CellStateNotFired
}

func (v GridView) IsMiss(x, y int) bool {
	return v.InBounds(x, y) && v.states[y*v.width+x] == CellStateMiss
}

// IsLiveHit reports a hit on a ship that is still afloat.
func (v GridView) IsLiveHit(x, y int) bool {
	if !v.InBounds(x, y) {
		return false
	}
	i := y*v.width + x
	return v.states[i] == CellStateHit && !v.sunk[i]
}

func (v GridView) IsSunkHit(x, y int) bool {
	return v.InBounds(x, y) && v.sunk[y*v.width+x]
}

func (v GridView) sunkAt(i int) bool {
	return v.sunk[i]
}

func (v GridView) IsAreaClearOfSunkenShips(x, y int) bool {
	if !v.InBounds(x, y) {
		return false
	}
	return areaClear(v.width, v.height, x, y, v.sunkAt)
}

func (v GridView) IsPotentialTarget(x, y int) bool {
	return v.IsNotFired(x, y) && v.IsAreaClearOfSunkenShips(x, y)
}

func (v GridView) NotFiredCells() []Coordinates {
	out := make([]Coordinates, 0, len(v.states))
	for i, st := range v.states {
		if st == CellStateNotFired {
			out = append(out, NewCoordinates(i%v.width, i/v.width))
		}
	}
	return out
}

func (v GridView) PotentialTargets() []Coordinates {
	out := make([]Coordinates, 0, len(v.states))
	for i, st := range v.states {
		x, y := i%v.width, i/v.width
		if st == CellStateNotFired && v.IsAreaClearOfSunkenShips(x, y) {
			out = append(out, NewCoordinates(x, y))
		}
	}
	return out
}

// LiveHits lists hits on ships not yet sunk, row by row.
func (v GridView) LiveHits() []Coordinates {
	out := make([]Coordinates, 0)
	for i, st := range v.states {
		if st == CellStateHit && !v.sunk[i] {
			out = append(out, NewCoordinates(i%v.width, i/v.width))
		}
	}
	return out
}

func (v GridView) SunkHits() []Coordinates {
	out := make([]Coordinates, 0)
	for i, sunk := range v.sunk {
		if sunk {
			out = append(out, NewCoordinates(i%v.width, i/v.width))
		}
	}
	return out
}
