package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-ai/internal/error"
)

// Grid owns the cell matrix and every ship placed on it. Cells refer to
// ships by index into ships; ships refer to cells by coordinates.
type Grid struct {
	width  int
	height int
	cells  []Cell
	ships  []*Ship
}

func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, cerr.ErrGridSize(width, height)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.cells[g.index(x, y)] = newCell(x, y)
		}
	}
	return g, nil
}

func MustNewGrid(width, height int) *Grid {
	g, err := NewGrid(width, height)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) IsValidCoordinate(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) Cell(x, y int) (Cell, error) {
	if !g.IsValidCoordinate(x, y) {
		return Cell{}, cerr.ErrXorYOutOfGridBound(x, y)
	}
	return g.cells[g.index(x, y)], nil
}

func (g *Grid) CellState(x, y int) (CellState, error) {
	if !g.IsValidCoordinate(x, y) {
		return CellStateNotFired, cerr.ErrXorYOutOfGridBound(x, y)
	}
	return g.cells[g.index(x, y)].state, nil
}

// ShipAt returns the ship occupying (x, y), if any.
func (g *Grid) ShipAt(x, y int) (*Ship, bool) {
	if !g.IsValidCoordinate(x, y) {
		return nil, false
	}
	c := g.cells[g.index(x, y)]
	if !c.HasShip() {
		return nil, false
	}
	return g.ships[c.shipIdx], true
}

// PlaceShip puts ship on the grid starting at (startX, startY) and growing
// right when horizontal, down otherwise. Nothing is mutated unless every
// cell is in bounds and clear of the buffer zone of other ships.
func (g *Grid) PlaceShip(ship *Ship, startX, startY int, horizontal bool) bool {
	if ship == nil || ship.IsPlaced() {
		return false
	}

	positions, ok := g.shipPositions(ship.Size(), startX, startY, horizontal)
	if !ok {
		return false
	}

	idx := len(g.ships)
	for _, p := range positions {
		g.cells[g.index(p.X, p.Y)].shipIdx = idx
	}
	ship.positions = positions
	g.ships = append(g.ships, ship)
	return true
}

// Fire resolves a shot. Firing at a cell that was already fired is a no-op
// reported as MoveResultAlreadyFired.
func (g *Grid) Fire(x, y int) (MoveResult, error) {
	if !g.IsValidCoordinate(x, y) {
		return MoveResultAlreadyFired, cerr.ErrXorYOutOfGridBound(x, y)
	}

	cell := &g.cells[g.index(x, y)]
	if cell.IsFired() {
		return MoveResultAlreadyFired, nil
	}

	if !cell.HasShip() {
		cell.state = CellStateMiss
		return MoveResultMiss, nil
	}

	cell.state = CellStateHit
	ship := g.ships[cell.shipIdx]
	ship.GotHit()
	if ship.IsSunk() {
		return MoveResultSunk, nil
	}
	return MoveResultHit, nil
}

// Reset clears every cell and forgets the fleet, reusing the cell storage.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].reset()
	}
	for i := range g.ships {
		g.ships[i] = nil
	}
	g.ships = g.ships[:0]
}

// AllShipsSunk is false on an empty fleet.
func (g *Grid) AllShipsSunk() bool {
	if len(g.ships) == 0 {
		return false
	}
	for _, ship := range g.ships {
		if !ship.IsSunk() {
			return false
		}
	}
	return true
}

func (g *Grid) Ships() []*Ship {
	out := make([]*Ship, len(g.ships))
	copy(out, g.ships)
	return out
}

func (g *Grid) ShipsRemaining() []*Ship {
	remaining := make([]*Ship, 0, len(g.ships))
	for _, ship := range g.ships {
		if !ship.IsSunk() {
			remaining = append(remaining, ship)
		}
	}
	return remaining
}

func (g *Grid) SunkShips() []*Ship {
	sunk := make([]*Ship, 0, len(g.ships))
	for _, ship := range g.ships {
		if ship.IsSunk() {
			sunk = append(sunk, ship)
		}
	}
	return sunk
}

// RemainingShipSizes lists the sizes of ships not yet sunk.
func (g *Grid) RemainingShipSizes() []int {
	sizes := make([]int, 0, len(g.ships))
	for _, ship := range g.ships {
		if !ship.IsSunk() {
			sizes = append(sizes, ship.Size())
		}
	}
	return sizes
}

func (g *Grid) isSunkHit(i int) bool {
	c := g.cells[i]
	return c.state == CellStateHit && c.HasShip() && g.ships[c.shipIdx].IsSunk()
}

// IsAreaClearOfSunkenShips is false if any cell of the 3x3 neighborhood of
// (x, y) is a hit on a sunk ship, or if (x, y) is outside the grid.
func (g *Grid) IsAreaClearOfSunkenShips(x, y int) bool {
	if !g.IsValidCoordinate(x, y) {
		return false
	}
	return areaClear(g.width, g.height, x, y, g.isSunkHit)
}

// IsPotentialTarget reports a not-fired cell that cannot be ruled out by the
// buffer zone around sunk ships.
func (g *Grid) IsPotentialTarget(x, y int) bool {
	if !g.IsValidCoordinate(x, y) {
		return false
	}
	return g.cells[g.index(x, y)].state == CellStateNotFired && g.IsAreaClearOfSunkenShips(x, y)
}

func (g *Grid) UntouchedCells() []Coordinates {
	out := make([]Coordinates, 0, len(g.cells))
	for _, c := range g.cells {
		if !c.IsFired() {
			out = append(out, c.coordinates)
		}
	}
	return out
}

// SmartUntouchedCells lists the potential targets.
func (g *Grid) SmartUntouchedCells() []Coordinates {
	out := make([]Coordinates, 0, len(g.cells))
	for _, c := range g.cells {
		if g.IsPotentialTarget(c.coordinates.X, c.coordinates.Y) {
			out = append(out, c.coordinates)
		}
	}
	return out
}

// View snapshots what an opponent may legitimately know about the grid.
func (g *Grid) View() GridView {
	v := GridView{
		width:  g.width,
		height: g.height,
		states: make([]CellState, len(g.cells)),
		sunk:   make([]bool, len(g.cells)),
	}
	for i, c := range g.cells {
		v.states[i] = c.state
		v.sunk[i] = g.isSunkHit(i)
	}
	return v
}

// String renders the firing state row by row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			sb.WriteByte(g.cells[g.index(x, y)].state.Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
