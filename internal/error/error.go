package error

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds       = errors.New("coordinates out of grid bound")
	ErrInvalidGridSize   = errors.New("grid dimensions must be positive")
	ErrInvalidShipConfig = errors.New("invalid ship configuration")
	ErrNoValidMove       = errors.New("no valid move available")
	ErrFleetPlacement    = errors.New("fleet could not be placed")
	ErrInvalidDifficulty = errors.New("invalid game difficulty")
	ErrGameNotFound      = errors.New("game does not exist")
	ErrPlayerNotFound    = errors.New("player does not exist")
	ErrNotPlayerTurn     = errors.New("not the player's turn")
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameNotReady      = errors.New("game is not ready to start")
	ErrHumanMove         = errors.New("human move must be provided by the controller")
	ErrInvalidPlayer     = errors.New("invalid player")
)

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrGridSize(width, height int) error {
	return fmt.Errorf("%w\twidth: %d\theight: %d", ErrInvalidGridSize, width, height)
}

func ErrShipConfig(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidShipConfig, reason)
}

func ErrNoMoveAvailable(strategy string) error {
	return fmt.Errorf("%w for %s reasoner, match should already be over", ErrNoValidMove, strategy)
}

func ErrShipNotPlaced(shipName string, attempts int) error {
	return fmt.Errorf("%w: ship %s not placed after %d attempts", ErrFleetPlacement, shipName, attempts)
}

func ErrGridHasShips(count int) error {
	return fmt.Errorf("%w: grid already holds %d ships", ErrFleetPlacement, count)
}

func ErrDifficulty(difficulty string) error {
	return fmt.Errorf("%w: %s", ErrInvalidDifficulty, difficulty)
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotFound, gameUuid)
}

func ErrPlayerNotExist(playerUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrPlayerNotFound, playerUuid)
}

func ErrNotTurnOf(playerUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrNotPlayerTurn, playerUuid)
}

func ErrGameIsFinished(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameFinished, gameUuid)
}

func ErrGameNotReadyToStart(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotReady, gameUuid)
}

func ErrMoveFromController(playerName string) error {
	return fmt.Errorf("%w, player: %s", ErrHumanMove, playerName)
}

func ErrPlayerNameBlank() error {
	return fmt.Errorf("%w: player name cannot be blank", ErrInvalidPlayer)
}
