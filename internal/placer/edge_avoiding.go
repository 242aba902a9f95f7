package placer

import (
	mb "github.com/saeidalz13/battleship-ai/models/battleship"
)

// largeShipSize is the size above which ships are always laid horizontally.
const largeShipSize = 3

// EdgeAvoidingProposer lays large ships horizontally and keeps every ship
// one cell away from the grid edge along its own axis.
type EdgeAvoidingProposer struct {
	rnd Random
}

func NewEdgeAvoidingProposer(rnd Random) *EdgeAvoidingProposer {
	return &EdgeAvoidingProposer{rnd: rnd}
}

func (p *EdgeAvoidingProposer) Propose(grid *mb.Grid, ship *mb.Ship) (int, int, bool) {
	horizontal := ship.Size() > largeShipSize || p.rnd.Intn(2) == 0
	if horizontal {
		return p.inset(grid.Width(), ship.Size()), p.rnd.Intn(grid.Height()), true
	}
	return p.rnd.Intn(grid.Width()), p.inset(grid.Height(), ship.Size()), false
}

// inset picks a start in [1, length-size-1], or 1 when the ship is too long
// for that range; the grid rejects anything that still does not fit.
func (p *EdgeAvoidingProposer) inset(length, size int) int {
	return 1 + p.rnd.Intn(max(1, length-size-1))
}
