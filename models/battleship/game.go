package battleship

import (
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-ai/internal/error"
	log "github.com/sirupsen/logrus"
)

// Game coordinates one match between a host and a join player. It is owned
// by a single session and is not safe for concurrent use.
type Game struct {
	uuid       string
	difficulty Difficulty
	config     GameConfig
	hostPlayer *Player
	joinPlayer *Player
	players    map[string]*Player
	turn       *Player
	winner     *Player
	isFinished bool
	logger     *log.Entry
}

func NewGame(difficulty Difficulty, config GameConfig) (*Game, error) {
	return newGame(uuid.NewString()[:6], difficulty, config)
}

func newGame(gameUuid string, difficulty Difficulty, config GameConfig) (*Game, error) {
	if !difficulty.IsValid() {
		return nil, cerr.ErrDifficulty(difficulty.String())
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Game{
		uuid:       gameUuid,
		difficulty: difficulty,
		config:     config,
		players:    make(map[string]*Player, 2),
		logger:     log.WithField("game", gameUuid),
	}, nil
}

func (g *Game) Uuid() string           { return g.uuid }
func (g *Game) Difficulty() Difficulty { return g.difficulty }
func (g *Game) Config() GameConfig     { return g.config }
func (g *Game) IsFinished() bool       { return g.isFinished }

// IsOver reports whether the game is finished.
func (g *Game) IsOver() bool { return g.isFinished }

// Winner is nil until the game is finished.
func (g *Game) Winner() *Player { return g.winner }

// CurrentTurn is nil until both players have joined.
func (g *Game) CurrentTurn() *Player { return g.turn }

func (g *Game) CreateHostPlayer(name string, targeter Targeter) (*Player, error) {
	p, err := NewPlayer(name, true, g.config.Width, g.config.Height, targeter)
	if err != nil {
		return nil, err
	}
	g.hostPlayer = p
	g.players[p.uuid] = p
	g.turn = p
	return p, nil
}

func (g *Game) CreateJoinPlayer(name string, targeter Targeter) (*Player, error) {
	p, err := NewPlayer(name, false, g.config.Width, g.config.Height, targeter)
	if err != nil {
		return nil, err
	}
	g.joinPlayer = p
	g.players[p.uuid] = p
	if g.turn == nil {
		g.turn = p
	}
	return p, nil
}

// GetPlayers returns the players in the order of host then join.
func (g *Game) GetPlayers() []*Player {
	return []*Player{g.hostPlayer, g.joinPlayer}
}

func (g *Game) FetchPlayer(isHost bool) *Player {
	if isHost {
		return g.hostPlayer
	}
	return g.joinPlayer
}

func (g *Game) FindPlayer(playerUuid string) (*Player, error) {
	player, prs := g.players[playerUuid]
	if !prs {
		return nil, cerr.ErrPlayerNotExist(playerUuid)
	}
	return player, nil
}

func (g *Game) Opponent(p *Player) *Player {
	if p == g.hostPlayer {
		return g.joinPlayer
	}
	return g.hostPlayer
}

// EnemyGrid is the grid player fires at.
func (g *Game) EnemyGrid(p *Player) *Grid {
	opp := g.Opponent(p)
	if opp == nil {
		return nil
	}
	return opp.grid
}

func (g *Game) EnemyShipsRemaining(p *Player) []*Ship {
	grid := g.EnemyGrid(p)
	if grid == nil {
		return nil
	}
	return grid.ShipsRemaining()
}

// IsFleetComplete reports whether p has placed exactly the configured fleet:
// every ShipConfig appears Count times and nothing else is on the grid.
func (g *Game) IsFleetComplete(p *Player) bool {
	if p == nil || len(p.grid.ships) != g.config.ShipCount() {
		return false
	}

	missing := make(map[ShipConfig]int, len(g.config.Fleet))
	for _, sc := range g.config.Fleet {
		missing[sc] += sc.count
	}
	for _, ship := range p.grid.ships {
		if missing[ship.config] == 0 {
			return false
		}
		missing[ship.config]--
	}
	return true
}

func (g *Game) IsReadyToStart() bool {
	return g.IsFleetComplete(g.hostPlayer) && g.IsFleetComplete(g.joinPlayer)
}

// SetStartingPlayer hands the opening shot to the given player.
func (g *Game) SetStartingPlayer(playerUuid string) error {
	p, err := g.FindPlayer(playerUuid)
	if err != nil {
		return err
	}
	g.turn = p
	return nil
}

// Fire resolves playerUuid's shot on the opponent grid. A hit or sink keeps
// the turn; a miss passes it. An already-fired cell mutates nothing.
func (g *Game) Fire(playerUuid string, x, y int) (MoveResult, error) {
	if g.isFinished {
		return MoveResultAlreadyFired, cerr.ErrGameIsFinished(g.uuid)
	}
	if !g.IsReadyToStart() {
		return MoveResultAlreadyFired, cerr.ErrGameNotReadyToStart(g.uuid)
	}

	attacker, err := g.FindPlayer(playerUuid)
	if err != nil {
		return MoveResultAlreadyFired, err
	}
	if attacker != g.turn {
		return MoveResultAlreadyFired, cerr.ErrNotTurnOf(playerUuid)
	}

	defender := g.Opponent(attacker)
	result, err := defender.grid.Fire(x, y)
	if err != nil {
		return result, err
	}

	g.logger.WithFields(log.Fields{
		"player": attacker.name,
		"x":      x,
		"y":      y,
		"result": result.String(),
	}).Debug("shot resolved")

	if result == MoveResultAlreadyFired {
		return result, nil
	}
	attacker.shotsFired++

	if defender.grid.AllShipsSunk() {
		g.finish(attacker, defender)
		return result, nil
	}
	if !result.KeepsTurn() {
		g.turn = defender
	}
	return result, nil
}

func (g *Game) finish(winner, loser *Player) {
	g.isFinished = true
	g.winner = winner
	winner.matchStatus = PlayerMatchStatusWon
	loser.matchStatus = PlayerMatchStatusLost

	g.logger.WithFields(log.Fields{
		"winner": winner.name,
		"shots":  winner.shotsFired,
	}).Info("game finished")
}

// NextAIMove asks the player's targeter for its next coordinate.
func (g *Game) NextAIMove(playerUuid string) (Coordinates, error) {
	p, err := g.FindPlayer(playerUuid)
	if err != nil {
		return Coordinates{}, err
	}
	if !p.IsAI() {
		return Coordinates{}, cerr.ErrMoveFromController(p.name)
	}

	enemy := g.EnemyGrid(p)
	if enemy == nil {
		return Coordinates{}, cerr.ErrGameNotReadyToStart(g.uuid)
	}
	return p.targeter.ChooseMove(enemy.View(), enemy.RemainingShipSizes())
}

// PlayAITurn chooses and fires one AI shot.
func (g *Game) PlayAITurn(playerUuid string) (Coordinates, MoveResult, error) {
	move, err := g.NextAIMove(playerUuid)
	if err != nil {
		return Coordinates{}, MoveResultAlreadyFired, err
	}
	result, err := g.Fire(playerUuid, move.X, move.Y)
	return move, result, err
}

// SunkShipCoordinates returns every cell of the sunk enemy ship covering
// (x, y), for rendering. ok is false if no sunk ship is there.
func (g *Game) SunkShipCoordinates(playerUuid string, x, y int) ([]Coordinates, bool, error) {
	p, err := g.FindPlayer(playerUuid)
	if err != nil {
		return nil, false, err
	}
	enemy := g.EnemyGrid(p)
	if enemy == nil {
		return nil, false, cerr.ErrGameNotReadyToStart(g.uuid)
	}
	if !enemy.IsValidCoordinate(x, y) {
		return nil, false, cerr.ErrXorYOutOfGridBound(x, y)
	}

	ship, ok := enemy.ShipAt(x, y)
	if !ok || !ship.IsSunk() {
		return nil, false, nil
	}
	return ship.Positions(), true, nil
}

// Rematch clears both grids in place and resets AI transient state. Fleets
// must be placed again before the next Fire.
func (g *Game) Rematch() {
	for _, p := range g.GetPlayers() {
		if p == nil {
			continue
		}
		p.grid.Reset()
		p.shotsFired = 0
		p.matchStatus = PlayerMatchStatusUndefined
		if p.targeter != nil {
			p.targeter.Reset()
		}
	}
	g.isFinished = false
	g.winner = nil
	g.turn = g.hostPlayer
	g.logger.Info("rematch started")
}
