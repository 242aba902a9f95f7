package reasoner

import (
	mb "github.com/saeidalz13/battleship-ai/models/battleship"

	cerr "github.com/saeidalz13/battleship-ai/internal/error"
)

// EasyReasoner fires uniformly at random among the cells not fired yet.
type EasyReasoner struct {
	rnd Random
}

func NewEasyReasoner(rnd Random) *EasyReasoner {
	return &EasyReasoner{rnd: rnd}
}

func (r *EasyReasoner) Difficulty() mb.Difficulty { return mb.DifficultyEasy }

func (r *EasyReasoner) Reset() {}

func (r *EasyReasoner) ChooseMove(view mb.GridView, _ []int) (mb.Coordinates, error) {
	available := view.NotFiredCells()
	if len(available) == 0 {
		return mb.Coordinates{}, cerr.ErrNoMoveAvailable(r.Difficulty().String())
	}
	return pick(r.rnd, available), nil
}
