package battleship

import (
	cerr "github.com/saeidalz13/battleship-ai/internal/error"
)

const (
	DefaultGridWidth  = 10
	DefaultGridHeight = 10
)

// GameConfig carries the grid dimensions and fleet composition of a match.
type GameConfig struct {
	Width  int
	Height int
	Fleet  []ShipConfig
}

// DefaultFleet is the classic five-ship fleet, one ship of each type.
func DefaultFleet() []ShipConfig {
	return []ShipConfig{
		MustNewShipConfig("Carrier", 5, 1),
		MustNewShipConfig("Battleship", 4, 1),
		MustNewShipConfig("Cruiser", 3, 1),
		MustNewShipConfig("Submarine", 3, 1),
		MustNewShipConfig("Destroyer", 2, 1),
	}
}

func DefaultGameConfig() GameConfig {
	return GameConfig{
		Width:  DefaultGridWidth,
		Height: DefaultGridHeight,
		Fleet:  DefaultFleet(),
	}
}

func (c GameConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return cerr.ErrGridSize(c.Width, c.Height)
	}
	if len(c.Fleet) == 0 {
		return cerr.ErrShipConfig("fleet cannot be empty")
	}
	for _, sc := range c.Fleet {
		// zero value slips past NewShipConfig
		if sc.size <= 0 || sc.count <= 0 || sc.name == "" {
			return cerr.ErrShipConfig("fleet contains an uninitialized ship config")
		}
		if sc.size > c.Width && sc.size > c.Height {
			return cerr.ErrShipConfig("ship " + sc.name + " does not fit the grid")
		}
	}
	return nil
}

// ShipCount is the number of ships in a complete fleet.
func (c GameConfig) ShipCount() int {
	n := 0
	for _, sc := range c.Fleet {
		n += sc.count
	}
	return n
}

// FleetSizes expands the fleet into one size entry per ship.
func (c GameConfig) FleetSizes() []int {
	sizes := make([]int, 0, c.ShipCount())
	for _, sc := range c.Fleet {
		for i := 0; i < sc.count; i++ {
			sizes = append(sizes, sc.size)
		}
	}
	return sizes
}

func (c GameConfig) TotalShipCells() int {
	total := 0
	for _, sc := range c.Fleet {
		total += sc.size * sc.count
	}
	return total
}
