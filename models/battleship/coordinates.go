package battleship

import "fmt"

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// Add returns the coordinates shifted by d.
func (c Coordinates) Add(d Coordinates) Coordinates {
	return Coordinates{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Orthogonal unit steps in the order up, down, left, right.
var (
	StepUp    = Coordinates{X: 0, Y: -1}
	StepDown  = Coordinates{X: 0, Y: 1}
	StepLeft  = Coordinates{X: -1, Y: 0}
	StepRight = Coordinates{X: 1, Y: 0}

	OrthogonalSteps = [4]Coordinates{StepUp, StepDown, StepLeft, StepRight}
)
