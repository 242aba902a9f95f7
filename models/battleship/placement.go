package battleship

// shipPositions computes the cells a ship of the given size would occupy and
// reports whether that placement is legal: every cell in bounds and no cell
// of any 3x3 neighborhood already taken by a ship.
func (g *Grid) shipPositions(size, startX, startY int, horizontal bool) ([]Coordinates, bool) {
	if size <= 0 {
		return nil, false
	}

	positions := make([]Coordinates, 0, size)
	for i := 0; i < size; i++ {
		x, y := startX, startY+i
		if horizontal {
			x, y = startX+i, startY
		}

		if !g.IsValidCoordinate(x, y) {
			return nil, false
		}
		if !g.isBufferZoneFree(x, y) {
			return nil, false
		}
		positions = append(positions, NewCoordinates(x, y))
	}
	return positions, true
}

// CanPlaceShip validates a placement without mutating the grid.
func (g *Grid) CanPlaceShip(size, startX, startY int, horizontal bool) bool {
	_, ok := g.shipPositions(size, startX, startY, horizontal)
	return ok
}

func (g *Grid) isBufferZoneFree(x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if !g.IsValidCoordinate(nx, ny) {
				continue
			}
			if g.cells[g.index(nx, ny)].HasShip() {
				return false
			}
		}
	}
	return true
}

// areaClear checks the 3x3 neighborhood of (x, y), self included, against
// the sunk-hit predicate over row-major indexes.
func areaClear(width, height, x, y int, sunkHit func(i int) bool) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			if sunkHit(ny*width + nx) {
				return false
			}
		}
	}
	return true
}
