package placer

import (
	mb "github.com/saeidalz13/battleship-ai/models/battleship"
)

// RandomProposer picks a uniform orientation and a start where the ship fits.
type RandomProposer struct {
	rnd Random
}

func NewRandomProposer(rnd Random) *RandomProposer {
	return &RandomProposer{rnd: rnd}
}

func (p *RandomProposer) Propose(grid *mb.Grid, ship *mb.Ship) (int, int, bool) {
	horizontal := p.rnd.Intn(2) == 0
	if horizontal {
		return p.rnd.Intn(spanOf(grid.Width(), ship.Size())), p.rnd.Intn(grid.Height()), true
	}
	return p.rnd.Intn(grid.Width()), p.rnd.Intn(spanOf(grid.Height(), ship.Size())), false
}
