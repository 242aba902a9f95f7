package placer

import (
	"math/rand"
	"testing"

	cerr "github.com/saeidalz13/battleship-ai/internal/error"
	mb "github.com/saeidalz13/battleship-ai/models/battleship"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedProposer always proposes the same start.
type fixedProposer struct {
	x, y       int
	horizontal bool
	calls      int
}

func (p *fixedProposer) Propose(_ *mb.Grid, _ *mb.Ship) (int, int, bool) {
	p.calls++
	return p.x, p.y, p.horizontal
}

func assertNoShipsTouch(t *testing.T, ships []*mb.Ship) {
	t.Helper()
	for i, a := range ships {
		for _, b := range ships[i+1:] {
			for _, pa := range a.Positions() {
				for _, pb := range b.Positions() {
					dx, dy := pa.X-pb.X, pa.Y-pb.Y
					touching := dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
					assert.False(t, touching, "%s at %s touches %s at %s", a.Name(), pa, b.Name(), pb)
				}
			}
		}
	}
}

func TestPlaceFleet(t *testing.T) {
	type Test struct {
		name     string
		proposer func(rnd Random) Proposer
	}
	tests := []Test{
		{name: "random", proposer: func(rnd Random) Proposer { return NewRandomProposer(rnd) }},
		{name: "edge avoiding", proposer: func(rnd Random) Proposer { return NewEdgeAvoidingProposer(rnd) }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for seed := int64(0); seed < 20; seed++ {
				grid := mb.MustNewGrid(mb.DefaultGridWidth, mb.DefaultGridHeight)
				ships, err := PlaceFleet(grid, mb.DefaultFleet(), test.proposer(rand.New(rand.NewSource(seed))))
				require.NoError(t, err)

				require.Len(t, ships, 5)
				assert.Equal(t, ships, grid.Ships())
				for _, ship := range ships {
					assert.True(t, ship.IsPlaced())
					assert.Len(t, ship.Positions(), ship.Size())
				}
				assertNoShipsTouch(t, ships)
			}
		})
	}
}

func TestPlaceFleetCounts(t *testing.T) {
	fleet := []mb.ShipConfig{mb.MustNewShipConfig("Patrol", 2, 3)}
	grid := mb.MustNewGrid(8, 8)

	ships, err := PlaceFleet(grid, fleet, NewRandomProposer(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	assert.Len(t, ships, 3)
	for _, ship := range ships {
		assert.Equal(t, "Patrol", ship.Name())
	}
}

func TestPlaceFleetFailureResetsGrid(t *testing.T) {
	fleet := []mb.ShipConfig{
		mb.MustNewShipConfig("Destroyer", 2, 1),
		mb.MustNewShipConfig("Submarine", 3, 1),
	}
	grid := mb.MustNewGrid(10, 10)
	proposer := &fixedProposer{x: 0, y: 0, horizontal: true}

	ships, err := PlaceFleet(grid, fleet, proposer)
	assert.ErrorIs(t, err, cerr.ErrFleetPlacement)
	assert.Nil(t, ships)
	assert.Empty(t, grid.Ships(), "no partial fleet survives")
	assert.Equal(t, 1+MaxPlacementAttempts, proposer.calls)
}

func TestPlaceFleetRejectsOccupiedGrid(t *testing.T) {
	grid := mb.MustNewGrid(10, 10)
	existing := mb.NewShip(mb.MustNewShipConfig("Destroyer", 2, 1))
	require.True(t, grid.PlaceShip(existing, 0, 0, true))

	ships, err := PlaceFleet(grid, mb.DefaultFleet(), NewRandomProposer(rand.New(rand.NewSource(1))))
	assert.ErrorIs(t, err, cerr.ErrFleetPlacement)
	assert.Nil(t, ships)
	assert.Equal(t, []*mb.Ship{existing}, grid.Ships(), "ships placed earlier are kept")
}

func TestEdgeAvoidingProposer(t *testing.T) {
	p := NewEdgeAvoidingProposer(rand.New(rand.NewSource(12)))
	grid := mb.MustNewGrid(10, 10)

	for i := 0; i < 200; i++ {
		for _, size := range []int{2, 3, 4, 5} {
			ship := mb.NewShip(mb.MustNewShipConfig("Test", size, 1))
			x, y, horizontal := p.Propose(grid, ship)
			if size > 3 {
				require.True(t, horizontal, "large ships lie horizontally")
			}

			start, length := y, grid.Height()
			if horizontal {
				start, length = x, grid.Width()
			}
			assert.GreaterOrEqual(t, start, 1)
			assert.LessOrEqual(t, start+size-1, length-2)
		}
	}
}

func TestRandomProposerStaysInBounds(t *testing.T) {
	p := NewRandomProposer(rand.New(rand.NewSource(3)))
	grid := mb.MustNewGrid(6, 4)
	ship := mb.NewShip(mb.MustNewShipConfig("Cruiser", 3, 1))

	for i := 0; i < 200; i++ {
		x, y, horizontal := p.Propose(grid, ship)
		assert.True(t, grid.CanPlaceShip(ship.Size(), x, y, horizontal), "x=%d y=%d h=%v", x, y, horizontal)
	}
}

func TestForDifficulty(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	assert.IsType(t, &RandomProposer{}, ForDifficulty(mb.DifficultyEasy, rnd))
	assert.IsType(t, &RandomProposer{}, ForDifficulty(mb.DifficultyMedium, rnd))
	assert.IsType(t, &EdgeAvoidingProposer{}, ForDifficulty(mb.DifficultyHard, rnd))
	assert.IsType(t, &EdgeAvoidingProposer{}, ForDifficulty(mb.DifficultyExpert, rnd))
}
