package battleship

// MoveResult is the outcome of firing at a coordinate.
type MoveResult uint8

const (
	MoveResultMiss MoveResult = iota
	MoveResultHit
	MoveResultSunk
	MoveResultAlreadyFired
)

func (mr MoveResult) String() string {
	switch mr {
	case MoveResultMiss:
		return "miss"
	case MoveResultHit:
		return "hit"
	case MoveResultSunk:
		return "sunk"
	case MoveResultAlreadyFired:
		return "already_fired"
	default:
		return "unknown"
	}
}

// KeepsTurn reports whether the shooter fires again after this result.
// Only a miss hands the turn to the opponent.
func (mr MoveResult) KeepsTurn() bool {
	return mr != MoveResultMiss
}
