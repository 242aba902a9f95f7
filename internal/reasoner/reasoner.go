// Package reasoner implements the AI targeting strategies. Every reasoner
// recomputes its choice from the visible opponent grid; only the medium
// reasoner carries directional memory between calls.
package reasoner

import (
	mb "github.com/saeidalz13/battleship-ai/models/battleship"

	cerr "github.com/saeidalz13/battleship-ai/internal/error"
)

// Random is the subset of *rand.Rand the reasoners draw from. Injecting it
// keeps every strategy reproducible under a fixed seed.
type Random interface {
	Intn(n int) int
}

// Reasoner is implemented by exactly four strategies: Easy, Medium, Hard
// and Expert.
type Reasoner interface {
	mb.Targeter
	Difficulty() mb.Difficulty
}

var (
	_ Reasoner = (*EasyReasoner)(nil)
	_ Reasoner = (*MediumReasoner)(nil)
	_ Reasoner = (*HardReasoner)(nil)
	_ Reasoner = (*ExpertReasoner)(nil)
)

func New(difficulty mb.Difficulty, rnd Random) (Reasoner, error) {
	switch difficulty {
	case mb.DifficultyEasy:
		return NewEasyReasoner(rnd), nil
	case mb.DifficultyMedium:
		return NewMediumReasoner(rnd), nil
	case mb.DifficultyHard:
		return NewHardReasoner(rnd), nil
	case mb.DifficultyExpert:
		return NewExpertReasoner(rnd), nil
	}
	return nil, cerr.ErrDifficulty(difficulty.String())
}

func pick(rnd Random, candidates []mb.Coordinates) mb.Coordinates {
	return candidates[rnd.Intn(len(candidates))]
}

// randomFallback picks among potential targets, then among any not-fired
// cell. It fails only when nothing is left to fire at.
func randomFallback(rnd Random, view mb.GridView, strategy mb.Difficulty) (mb.Coordinates, error) {
	if smart := view.PotentialTargets(); len(smart) > 0 {
		return pick(rnd, smart), nil
	}
	if remaining := view.NotFiredCells(); len(remaining) > 0 {
		return pick(rnd, remaining), nil
	}
	return mb.Coordinates{}, cerr.ErrNoMoveAvailable(strategy.String())
}
