// Package simulation plays AI-vs-AI matches in bulk and aggregates the
// outcomes, optionally recording each one in the statistics store.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/saeidalz13/battleship-ai/db/sqlc"
	cerr "github.com/saeidalz13/battleship-ai/internal/error"
	"github.com/saeidalz13/battleship-ai/internal/placer"
	"github.com/saeidalz13/battleship-ai/internal/reasoner"
	mb "github.com/saeidalz13/battleship-ai/models/battleship"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	SideAttacker = "attacker"
	SideDefender = "defender"

	defaultGames       = 100
	defaultConcurrency = 4
)

var ErrMoveLimit = errors.New("match exceeded its move limit")

// Recorder persists finished matches. *sqlc.AnalyticsManager satisfies it.
type Recorder interface {
	RecordMatch(ctx context.Context, rec sqlc.MatchRecord) error
}

var _ Recorder = (*sqlc.AnalyticsManager)(nil)

type Simulator struct {
	games       int
	concurrency int
	seed        int64
	attacker    mb.Difficulty
	defender    mb.Difficulty
	config      mb.GameConfig
	manager     mb.GameManager
	recorder    Recorder
	logger      *log.Entry
}

type Option func(*Simulator) error

func NewSimulator(opts ...Option) (*Simulator, error) {
	s := &Simulator{
		games:       defaultGames,
		concurrency: defaultConcurrency,
		seed:        time.Now().UnixNano(),
		attacker:    mb.DifficultyExpert,
		defender:    mb.DifficultyHard,
		config:      mb.DefaultGameConfig(),
		logger:      log.NewEntry(log.StandardLogger()),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.manager == nil {
		s.manager = mb.NewBattleshipGameManager()
	}
	return s, nil
}

func WithGames(games int) Option {
	return func(s *Simulator) error {
		if games <= 0 {
			return fmt.Errorf("games must be positive, got %d", games)
		}
		s.games = games
		return nil
	}
}

func WithConcurrency(concurrency int) Option {
	return func(s *Simulator) error {
		if concurrency <= 0 {
			return fmt.Errorf("concurrency must be positive, got %d", concurrency)
		}
		s.concurrency = concurrency
		return nil
	}
}

func WithSeed(seed int64) Option {
	return func(s *Simulator) error {
		s.seed = seed
		return nil
	}
}

func WithDifficulties(attacker, defender mb.Difficulty) Option {
	return func(s *Simulator) error {
		for _, d := range []mb.Difficulty{attacker, defender} {
			if !d.IsValid() {
				return cerr.ErrDifficulty(d.String())
			}
		}
		s.attacker = attacker
		s.defender = defender
		return nil
	}
}

func WithGameConfig(config mb.GameConfig) Option {
	return func(s *Simulator) error {
		if err := config.Validate(); err != nil {
			return err
		}
		s.config = config
		return nil
	}
}

func WithGameManager(manager mb.GameManager) Option {
	return func(s *Simulator) error {
		s.manager = manager
		return nil
	}
}

// WithAnalytics records every finished match through r.
func WithAnalytics(r Recorder) Option {
	return func(s *Simulator) error {
		s.recorder = r
		return nil
	}
}

func WithLogger(logger *log.Entry) Option {
	return func(s *Simulator) error {
		s.logger = logger
		return nil
	}
}

// MatchOutcome is the result of a single match. Err is set when the match
// was aborted.
type MatchOutcome struct {
	Index  int
	Winner string
	Shots  int
	Err    error
}

type Report struct {
	Games        int
	AttackerWins int
	DefenderWins int
	Aborted      int
	AvgShots     float64
	MinShots     int
	MaxShots     int
	Outcomes     []MatchOutcome
}

// Run plays every match, at most s.concurrency at a time. Aborted matches
// are counted in the report; only context cancellation fails the run.
func (s *Simulator) Run(ctx context.Context) (Report, error) {
	outcomes := make([]MatchOutcome, s.games)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := 0; i < s.games; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = s.playMatch(gctx, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := summarize(outcomes)
	s.logger.WithFields(log.Fields{
		"games":         report.Games,
		"attacker":      s.attacker.String(),
		"defender":      s.defender.String(),
		"attacker_wins": report.AttackerWins,
		"defender_wins": report.DefenderWins,
		"aborted":       report.Aborted,
		"avg_shots":     report.AvgShots,
	}).Info("simulation finished")
	return report, nil
}

func (s *Simulator) playMatch(ctx context.Context, index int) MatchOutcome {
	outcome := MatchOutcome{Index: index}
	logger := s.logger.WithField("match", index)

	rnd := rand.New(rand.NewSource(s.seed + int64(index)))
	game, attacker, err := s.setupMatch(rnd, index)
	if err != nil {
		outcome.Err = err
		logger.WithError(err).Warn("match aborted during setup")
		return outcome
	}
	defer s.manager.TerminateGame(game.Uuid())

	winner, err := playOut(game, s.moveLimit())
	if err != nil {
		outcome.Err = err
		logger.WithError(err).Warn("match aborted")
		return outcome
	}

	outcome.Shots = winner.ShotsFired()
	outcome.Winner = SideDefender
	if winner == attacker {
		outcome.Winner = SideAttacker
	}
	logger.WithFields(log.Fields{
		"game":   game.Uuid(),
		"winner": outcome.Winner,
		"shots":  outcome.Shots,
	}).Debug("match finished")

	if s.recorder != nil {
		rec := sqlc.MatchRecord{
			Attacker: s.attacker.String(),
			Defender: s.defender.String(),
			Winner:   outcome.Winner,
			Shots:    outcome.Shots,
			Width:    s.config.Width,
			Height:   s.config.Height,
		}
		if err := s.recorder.RecordMatch(ctx, rec); err != nil {
			logger.WithError(err).Error("failed to record match")
		}
	}
	return outcome
}

// setupMatch creates the game, both AI players and their fleets. Odd matches
// are opened by the defender.
func (s *Simulator) setupMatch(rnd *rand.Rand, index int) (*mb.Game, *mb.Player, error) {
	game, err := s.manager.CreateGame(s.attacker, s.config)
	if err != nil {
		return nil, nil, err
	}

	attacker, err := s.createPlayer(game, rnd, true, s.attacker)
	if err != nil {
		s.manager.TerminateGame(game.Uuid())
		return nil, nil, err
	}
	defender, err := s.createPlayer(game, rnd, false, s.defender)
	if err != nil {
		s.manager.TerminateGame(game.Uuid())
		return nil, nil, err
	}

	if index%2 == 1 {
		if err := game.SetStartingPlayer(defender.Uuid()); err != nil {
			s.manager.TerminateGame(game.Uuid())
			return nil, nil, err
		}
	}
	return game, attacker, nil
}

func (s *Simulator) createPlayer(game *mb.Game, rnd *rand.Rand, isHost bool, difficulty mb.Difficulty) (*mb.Player, error) {
	r, err := reasoner.New(difficulty, rnd)
	if err != nil {
		return nil, err
	}

	var p *mb.Player
	if isHost {
		p, err = game.CreateHostPlayer(SideAttacker, r)
	} else {
		p, err = game.CreateJoinPlayer(SideDefender, r)
	}
	if err != nil {
		return nil, err
	}

	if _, err := placer.PlaceFleet(p.Grid(), s.config.Fleet, placer.ForDifficulty(difficulty, rnd)); err != nil {
		return nil, err
	}
	return p, nil
}

// moveLimit allows every cell of both grids to be fired at twice.
func (s *Simulator) moveLimit() int {
	return 4 * s.config.Width * s.config.Height
}

// playOut alternates AI turns until the game is over.
func playOut(game *mb.Game, limit int) (*mb.Player, error) {
	for moves := 0; !game.IsOver(); moves++ {
		if moves >= limit {
			return nil, fmt.Errorf("%w: game %s after %d moves", ErrMoveLimit, game.Uuid(), moves)
		}
		if _, _, err := game.PlayAITurn(game.CurrentTurn().Uuid()); err != nil {
			return nil, err
		}
	}
	return game.Winner(), nil
}

func summarize(outcomes []MatchOutcome) Report {
	report := Report{Games: len(outcomes), Outcomes: outcomes, MinShots: math.MaxInt}
	totalShots, finished := 0, 0

	for _, o := range outcomes {
		if o.Err != nil {
			report.Aborted++
			continue
		}
		switch o.Winner {
		case SideAttacker:
			report.AttackerWins++
		case SideDefender:
			report.DefenderWins++
		}
		finished++
		totalShots += o.Shots
		report.MinShots = min(report.MinShots, o.Shots)
		report.MaxShots = max(report.MaxShots, o.Shots)
	}

	if finished == 0 {
		report.MinShots = 0
		return report
	}
	report.AvgShots = float64(totalShots) / float64(finished)
	return report
}
