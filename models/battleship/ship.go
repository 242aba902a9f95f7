package battleship

import (
	"strings"

	cerr "github.com/saeidalz13/battleship-ai/internal/error"
)

// ShipConfig is an immutable fleet template. Two configs are equal when
// name, size and count all match, so plain == comparison is valid.
type ShipConfig struct {
	name  string
	size  int
	count int
}

func NewShipConfig(name string, size, count int) (ShipConfig, error) {
	if strings.TrimSpace(name) == "" {
		return ShipConfig{}, cerr.ErrShipConfig("ship name cannot be blank")
	}
	if size <= 0 {
		return ShipConfig{}, cerr.ErrShipConfig("ship size must be positive")
	}
	if count <= 0 {
		return ShipConfig{}, cerr.ErrShipConfig("ship count must be positive")
	}

	return ShipConfig{name: name, size: size, count: count}, nil
}

// MustNewShipConfig panics on an invalid template. Intended for static fleets.
func MustNewShipConfig(name string, size, count int) ShipConfig {
	sc, err := NewShipConfig(name, size, count)
	if err != nil {
		panic(err)
	}
	return sc
}

func (sc ShipConfig) Name() string { return sc.name }
func (sc ShipConfig) Size() int    { return sc.size }
func (sc ShipConfig) Count() int   { return sc.count }

type Ship struct {
	config    ShipConfig
	hits      int
	positions []Coordinates
}

// NewShip creates an unplaced ship. A ship that fails placement is simply
// discarded and a fresh one is created for the next attempt.
func NewShip(config ShipConfig) *Ship {
	return &Ship{config: config}
}

func (sh *Ship) Config() ShipConfig {
	return sh.config
}

func (sh *Ship) Name() string {
	return sh.config.name
}

func (sh *Ship) Size() int {
	return sh.config.size
}

func (sh *Ship) HitsTaken() int {
	return sh.hits
}

// GotHit records one hit. Hits on a sunk ship are ignored so the counter
// never passes the ship size.
func (sh *Ship) GotHit() {
	if sh.IsSunk() {
		return
	}
	sh.hits++
}

func (sh *Ship) IsSunk() bool {
	return sh.hits == sh.config.size
}

func (sh *Ship) IsPlaced() bool {
	return sh.positions != nil
}

// Positions returns a copy of the occupied coordinates.
func (sh *Ship) Positions() []Coordinates {
	out := make([]Coordinates, len(sh.positions))
	copy(out, sh.positions)
	return out
}

func (sh *Ship) Occupies(x, y int) bool {
	for _, p := range sh.positions {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}
