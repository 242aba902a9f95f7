package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	mb "github.com/saeidalz13/battleship-ai/models/battleship"
	log "github.com/sirupsen/logrus"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	defaultMigrationDir = "file://db/migration"
	defaultGames        = 100
	defaultConcurrency  = 4
)

type Config struct {
	Stage        string
	LogLevel     log.Level
	DatabaseUrl  string
	MigrationDir string
	Games        int
	Concurrency  int
	Seed         int64
	Attacker     mb.Difficulty
	Defender     mb.Difficulty
	GridWidth    int
	GridHeight   int
}

// Load reads the environment, loading envFile first outside of prod. A
// missing env file is not an error.
func Load(envFile string) (Config, error) {
	if os.Getenv("STAGE") != StageProd && envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		Stage:        os.Getenv("STAGE"),
		DatabaseUrl:  os.Getenv("DATABASE_URL"),
		MigrationDir: getEnv("MIGRATION_DIR", defaultMigrationDir),
	}
	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got: %s", cfg.Stage)
	}

	level, err := log.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	if cfg.Games, err = getEnvInt("SIM_GAMES", defaultGames); err != nil {
		return Config{}, err
	}
	if cfg.Concurrency, err = getEnvInt("SIM_CONCURRENCY", defaultConcurrency); err != nil {
		return Config{}, err
	}
	if cfg.GridWidth, err = getEnvInt("GRID_WIDTH", mb.DefaultGridWidth); err != nil {
		return Config{}, err
	}
	if cfg.GridHeight, err = getEnvInt("GRID_HEIGHT", mb.DefaultGridHeight); err != nil {
		return Config{}, err
	}
	if cfg.Games <= 0 || cfg.Concurrency <= 0 {
		return Config{}, fmt.Errorf("SIM_GAMES and SIM_CONCURRENCY must be positive")
	}

	seed, err := getEnvInt("SIM_SEED", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)
	if _, set := os.LookupEnv("SIM_SEED"); !set {
		cfg.Seed = time.Now().UnixNano()
	}

	if cfg.Attacker, err = mb.ParseDifficulty(getEnv("SIM_ATTACKER", mb.DifficultyExpert.String())); err != nil {
		return Config{}, err
	}
	if cfg.Defender, err = mb.ParseDifficulty(getEnv("SIM_DEFENDER", mb.DifficultyHard.String())); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// GameConfig is the default fleet on the configured grid.
func (c Config) GameConfig() mb.GameConfig {
	gc := mb.DefaultGameConfig()
	gc.Width = c.GridWidth
	gc.Height = c.GridHeight
	return gc
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

// ConfigureLogger applies the level and picks JSON output in prod.
func (c Config) ConfigureLogger(logger *log.Logger) {
	logger.SetLevel(c.LogLevel)
	if c.Stage == StageProd {
		logger.SetFormatter(&log.JSONFormatter{})
		return
	}
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}
