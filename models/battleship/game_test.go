package battleship

import (
	"fmt"
	"sync"
	"testing"

	cerr "github.com/saeidalz13/battleship-ai/internal/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedTargeter replays a fixed list of moves.
type scriptedTargeter struct {
	moves  []Coordinates
	next   int
	resets int
}

func (s *scriptedTargeter) ChooseMove(_ GridView, _ []int) (Coordinates, error) {
	if s.next >= len(s.moves) {
		return Coordinates{}, cerr.ErrNoMoveAvailable("scripted")
	}
	m := s.moves[s.next]
	s.next++
	return m, nil
}

func (s *scriptedTargeter) Reset() {
	s.next = 0
	s.resets++
}

func smallGameConfig() GameConfig {
	return GameConfig{
		Width:  5,
		Height: 5,
		Fleet:  []ShipConfig{MustNewShipConfig("Destroyer", 2, 1)},
	}
}

func newTestGame(t *testing.T, hostTargeter, joinTargeter Targeter) (*Game, *Player, *Player) {
	t.Helper()
	game, err := NewGame(DifficultyMedium, smallGameConfig())
	require.NoError(t, err)

	host, err := game.CreateHostPlayer("host", hostTargeter)
	require.NoError(t, err)
	join, err := game.CreateJoinPlayer("join", joinTargeter)
	require.NoError(t, err)
	return game, host, join
}

func placeDestroyer(t *testing.T, p *Player) {
	t.Helper()
	require.True(t, p.Grid().PlaceShip(NewShip(MustNewShipConfig("Destroyer", 2, 1)), 0, 0, true))
}

func TestNewGame(t *testing.T) {
	game, err := NewGame(DifficultyHard, DefaultGameConfig())
	require.NoError(t, err)
	assert.Len(t, game.Uuid(), 6)
	assert.Equal(t, DifficultyHard, game.Difficulty())
	assert.False(t, game.IsFinished())
	assert.Nil(t, game.CurrentTurn())
	assert.Nil(t, game.Winner())

	_, err = NewGame(Difficulty(9), DefaultGameConfig())
	assert.ErrorIs(t, err, cerr.ErrInvalidDifficulty)

	_, err = NewGame(DifficultyEasy, GameConfig{Width: 10, Height: 10})
	assert.ErrorIs(t, err, cerr.ErrInvalidShipConfig)

	_, err = game.CreateHostPlayer(" ", nil)
	assert.ErrorIs(t, err, cerr.ErrInvalidPlayer)
}

func TestGamePlayers(t *testing.T) {
	game, host, join := newTestGame(t, nil, nil)

	assert.Len(t, host.Uuid(), 10)
	assert.True(t, host.IsHost())
	assert.False(t, join.IsHost())
	assert.Same(t, host, game.FetchPlayer(true))
	assert.Same(t, join, game.FetchPlayer(false))
	assert.Equal(t, []*Player{host, join}, game.GetPlayers())
	assert.Same(t, join, game.Opponent(host))
	assert.Same(t, host.Grid(), game.EnemyGrid(join))
	assert.Same(t, host, game.CurrentTurn())

	found, err := game.FindPlayer(join.Uuid())
	require.NoError(t, err)
	assert.Same(t, join, found)

	_, err = game.FindPlayer("nobody")
	assert.ErrorIs(t, err, cerr.ErrPlayerNotFound)
}

func TestGameFire(t *testing.T) {
	game, host, join := newTestGame(t, nil, nil)

	_, err := game.Fire(host.Uuid(), 0, 0)
	assert.ErrorIs(t, err, cerr.ErrGameNotReady)

	placeDestroyer(t, host)
	assert.False(t, game.IsReadyToStart())
	placeDestroyer(t, join)
	require.True(t, game.IsReadyToStart())

	type Test struct {
		name         string
		shooter      *Player
		x, y         int
		expected     MoveResult
		expectedErr  error
		expectedTurn *Player
	}
	tests := []Test{
		{name: "join fires out of turn", shooter: join, x: 0, y: 0, expected: MoveResultAlreadyFired, expectedErr: cerr.ErrNotPlayerTurn, expectedTurn: host},
		{name: "host misses", shooter: host, x: 4, y: 4, expected: MoveResultMiss, expectedTurn: join},
		{name: "join out of bounds", shooter: join, x: 5, y: 0, expected: MoveResultAlreadyFired, expectedErr: cerr.ErrOutOfBounds, expectedTurn: join},
		{name: "join hits and keeps turn", shooter: join, x: 0, y: 0, expected: MoveResultHit, expectedTurn: join},
		{name: "join repeats a hit", shooter: join, x: 0, y: 0, expected: MoveResultAlreadyFired, expectedTurn: join},
		{name: "join sinks the fleet", shooter: join, x: 1, y: 0, expected: MoveResultSunk, expectedTurn: join},
		{name: "host fires after the end", shooter: host, x: 1, y: 1, expected: MoveResultAlreadyFired, expectedErr: cerr.ErrGameFinished, expectedTurn: join},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := game.Fire(test.shooter.Uuid(), test.x, test.y)
			if test.expectedErr != nil {
				assert.ErrorIs(t, err, test.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, test.expected, result)
			assert.Same(t, test.expectedTurn, game.CurrentTurn())
		})
	}

	assert.True(t, game.IsOver())
	assert.Same(t, join, game.Winner())
	assert.Equal(t, PlayerMatchStatusWon, join.MatchStatus())
	assert.Equal(t, PlayerMatchStatusLost, host.MatchStatus())
	assert.True(t, host.IsLoser())
	assert.Equal(t, 2, join.ShotsFired(), "repeated shots are not counted")
	assert.Equal(t, 1, host.ShotsFired())
	assert.Empty(t, game.EnemyShipsRemaining(join))

	coords, ok, err := game.SunkShipCoordinates(join.Uuid(), 1, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []Coordinates{{X: 0, Y: 0}, {X: 1, Y: 0}}, coords)

	_, ok, err = game.SunkShipCoordinates(host.Uuid(), 0, 0)
	require.NoError(t, err)
	assert.False(t, ok, "host never hit the join ship")

	_, _, err = game.SunkShipCoordinates(host.Uuid(), 7, 0)
	assert.ErrorIs(t, err, cerr.ErrOutOfBounds)
}

func TestGameFleetComposition(t *testing.T) {
	dinghy := MustNewShipConfig("Dinghy", 1, 1)

	type Test struct {
		name     string
		fleet    []ShipConfig
		expected bool
	}
	tests := []Test{
		{name: "configured fleet", fleet: DefaultFleet(), expected: true},
		{name: "right count wrong ships", fleet: []ShipConfig{dinghy, dinghy, dinghy, dinghy, dinghy}},
		{name: "one ship swapped", fleet: append(DefaultFleet()[:4], dinghy)},
		{name: "one ship missing", fleet: DefaultFleet()[:4]},
		{name: "duplicate instead of distinct", fleet: append(DefaultFleet()[:4], DefaultFleet()[3])},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game, err := NewGame(DifficultyEasy, DefaultGameConfig())
			require.NoError(t, err)
			host, err := game.CreateHostPlayer("host", nil)
			require.NoError(t, err)
			join, err := game.CreateJoinPlayer("join", nil)
			require.NoError(t, err)

			// one ship per even row, all from column 0
			for _, p := range []*Player{host, join} {
				for i, sc := range test.fleet {
					require.True(t, p.Grid().PlaceShip(NewShip(sc), 0, 2*i, true))
				}
			}

			assert.Equal(t, test.expected, game.IsFleetComplete(host))
			assert.Equal(t, test.expected, game.IsReadyToStart())

			_, err = game.Fire(host.Uuid(), 0, 0)
			if test.expected {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, cerr.ErrGameNotReady)
			}
		})
	}
}

func TestGameAITurns(t *testing.T) {
	hostAI := &scriptedTargeter{moves: []Coordinates{{X: 0, Y: 0}, {X: 1, Y: 0}}}
	game, host, join := newTestGame(t, hostAI, nil)
	placeDestroyer(t, host)
	placeDestroyer(t, join)

	assert.True(t, host.IsAI())
	assert.False(t, join.IsAI())

	_, err := game.NextAIMove(join.Uuid())
	assert.ErrorIs(t, err, cerr.ErrHumanMove)

	move, result, err := game.PlayAITurn(host.Uuid())
	require.NoError(t, err)
	assert.Equal(t, NewCoordinates(0, 0), move)
	assert.Equal(t, MoveResultHit, result)

	move, result, err = game.PlayAITurn(host.Uuid())
	require.NoError(t, err)
	assert.Equal(t, NewCoordinates(1, 0), move)
	assert.Equal(t, MoveResultSunk, result)
	assert.Same(t, host, game.Winner())

	_, _, err = game.PlayAITurn(host.Uuid())
	assert.ErrorIs(t, err, cerr.ErrNoValidMove)
}

func TestGameRematch(t *testing.T) {
	hostAI := &scriptedTargeter{moves: []Coordinates{{X: 0, Y: 0}, {X: 1, Y: 0}}}
	game, host, join := newTestGame(t, hostAI, nil)
	placeDestroyer(t, host)
	placeDestroyer(t, join)
	require.NoError(t, game.SetStartingPlayer(host.Uuid()))

	for !game.IsOver() {
		_, _, err := game.PlayAITurn(host.Uuid())
		require.NoError(t, err)
	}
	hostGrid := host.Grid()

	game.Rematch()

	assert.False(t, game.IsOver())
	assert.Nil(t, game.Winner())
	assert.Same(t, host, game.CurrentTurn())
	assert.Same(t, hostGrid, host.Grid(), "grids are reused")
	assert.Empty(t, join.Grid().Ships())
	assert.Len(t, join.Grid().UntouchedCells(), 25)
	assert.Equal(t, 0, host.ShotsFired())
	assert.Equal(t, PlayerMatchStatusUndefined, host.MatchStatus())
	assert.Equal(t, 1, hostAI.resets)
	assert.False(t, game.IsReadyToStart())

	_, err := game.Fire(host.Uuid(), 0, 0)
	assert.ErrorIs(t, err, cerr.ErrGameNotReady)
}

func TestBattleshipGameManager(t *testing.T) {
	bgm := NewBattleshipGameManager()

	game, err := bgm.CreateGame(DifficultyExpert, DefaultGameConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, bgm.Count())

	fetched, err := bgm.GetGame(game.Uuid())
	require.NoError(t, err)
	assert.Same(t, game, fetched)

	_, err = bgm.CreateGame(Difficulty(7), DefaultGameConfig())
	assert.ErrorIs(t, err, cerr.ErrInvalidDifficulty)
	assert.Equal(t, 1, bgm.Count())

	bgm.TerminateGame(game.Uuid())
	assert.Equal(t, 0, bgm.Count())
	_, err = bgm.GetGame(game.Uuid())
	assert.ErrorIs(t, err, cerr.ErrGameNotFound)
}

func TestBattleshipGameManagerConcurrentCreate(t *testing.T) {
	bgm := NewBattleshipGameManager()
	const n = 50

	var wg sync.WaitGroup
	uuids := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			game, err := bgm.CreateGame(DifficultyEasy, DefaultGameConfig())
			if err != nil {
				panic(fmt.Sprintf("create game %d: %v", i, err))
			}
			uuids[i] = game.Uuid()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, bgm.Count())
	seen := make(map[string]struct{}, n)
	for _, u := range uuids {
		seen[u] = struct{}{}
	}
	assert.Len(t, seen, n)
}
