// Package placer positions a whole fleet automatically. Strategies only
// propose coordinates; every proposal still goes through Grid.PlaceShip.
package placer

import (
	cerr "github.com/saeidalz13/battleship-ai/internal/error"
	mb "github.com/saeidalz13/battleship-ai/models/battleship"
)

// MaxPlacementAttempts bounds the proposals tried for a single ship.
const MaxPlacementAttempts = 100

type Random interface {
	Intn(n int) int
}

// Proposer suggests where to try the next placement of ship.
type Proposer interface {
	Propose(grid *mb.Grid, ship *mb.Ship) (x, y int, horizontal bool)
}

// PlaceFleet places every ship of fleet on an empty grid. If any ship cannot
// be placed within MaxPlacementAttempts the grid is reset and an error
// wrapping cerr.ErrFleetPlacement is returned; no partial fleet survives.
// A grid that already holds ships is rejected untouched.
func PlaceFleet(grid *mb.Grid, fleet []mb.ShipConfig, proposer Proposer) ([]*mb.Ship, error) {
	if n := len(grid.Ships()); n != 0 {
		return nil, cerr.ErrGridHasShips(n)
	}

	placed := make([]*mb.Ship, 0, len(fleet))

	for _, sc := range fleet {
		for i := 0; i < sc.Count(); i++ {
			ship, ok := placeOne(grid, sc, proposer)
			if !ok {
				grid.Reset()
				return nil, cerr.ErrShipNotPlaced(sc.Name(), MaxPlacementAttempts)
			}
			placed = append(placed, ship)
		}
	}
	return placed, nil
}

func placeOne(grid *mb.Grid, sc mb.ShipConfig, proposer Proposer) (*mb.Ship, bool) {
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		ship := mb.NewShip(sc)
		x, y, horizontal := proposer.Propose(grid, ship)
		if grid.PlaceShip(ship, x, y, horizontal) {
			return ship, true
		}
	}
	return nil, false
}

func spanOf(length, size int) int {
	return max(1, length-size+1)
}

// ForDifficulty returns the proposer an AI of the given difficulty places its
// fleet with: hard and expert avoid the edges, the rest place at random.
func ForDifficulty(difficulty mb.Difficulty, rnd Random) Proposer {
	if difficulty >= mb.DifficultyHard {
		return NewEdgeAvoidingProposer(rnd)
	}
	return NewRandomProposer(rnd)
}
