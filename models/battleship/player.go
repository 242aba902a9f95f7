package battleship

import (
	"strings"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-ai/internal/error"
)

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

// Targeter chooses the next coordinate to fire at from what is visible of
// the opponent grid and the sizes of the opponent ships still afloat.
type Targeter interface {
	ChooseMove(view GridView, remaining []int) (Coordinates, error)
	// Reset drops transient per-match state.
	Reset()
}

type Player struct {
	uuid        string
	name        string
	isHost      bool
	matchStatus int
	shotsFired  int
	grid        *Grid
	targeter    Targeter
}

// NewPlayer creates a player owning a fresh grid. targeter is nil for
// humans, whose moves come from the controller.
func NewPlayer(name string, isHost bool, width, height int, targeter Targeter) (*Player, error) {
	if strings.TrimSpace(name) == "" {
		return nil, cerr.ErrPlayerNameBlank()
	}
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	return &Player{
		uuid:        uuid.NewString()[:10],
		name:        name,
		isHost:      isHost,
		matchStatus: PlayerMatchStatusUndefined,
		grid:        grid,
		targeter:    targeter,
	}, nil
}

func (p *Player) Uuid() string       { return p.uuid }
func (p *Player) Name() string       { return p.name }
func (p *Player) IsHost() bool       { return p.isHost }
func (p *Player) Grid() *Grid        { return p.grid }
func (p *Player) MatchStatus() int   { return p.matchStatus }
func (p *Player) ShotsFired() int    { return p.shotsFired }
func (p *Player) Targeter() Targeter { return p.targeter }

func (p *Player) IsAI() bool {
	return p.targeter != nil
}

func (p *Player) IsLoser() bool {
	return p.grid.AllShipsSunk()
}

func (p *Player) SetTargeter(t Targeter) {
	p.targeter = t
}
