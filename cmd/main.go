package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/saeidalz13/battleship-ai/db"
	"github.com/saeidalz13/battleship-ai/db/sqlc"
	"github.com/saeidalz13/battleship-ai/internal/config"
	"github.com/saeidalz13/battleship-ai/internal/simulation"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalln(err)
	}
	cfg.ConfigureLogger(log.StandardLogger())

	opts := []simulation.Option{
		simulation.WithGames(cfg.Games),
		simulation.WithConcurrency(cfg.Concurrency),
		simulation.WithSeed(cfg.Seed),
		simulation.WithDifficulties(cfg.Attacker, cfg.Defender),
		simulation.WithGameConfig(cfg.GameConfig()),
		simulation.WithLogger(log.WithField("seed", cfg.Seed)),
	}

	if cfg.DatabaseUrl != "" {
		conn := db.MustConnectToDb(cfg.DatabaseUrl, cfg.MigrationDir)
		defer conn.Close()

		serverIp, err := sqlc.ServerIpNet()
		if err != nil {
			log.Fatalln(err)
		}
		dbManager := sqlc.NewDbManager(conn, serverIp)
		opts = append(opts, simulation.WithAnalytics(dbManager.Analytics))
	} else {
		log.Info("DATABASE_URL not set, match results will not be recorded")
	}

	simulator, err := simulation.NewSimulator(opts...)
	if err != nil {
		log.Fatalln(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := simulator.Run(ctx)
	if err != nil {
		log.WithError(err).Error("simulation interrupted")
		return
	}

	log.WithFields(log.Fields{
		"attacker_wins": report.AttackerWins,
		"defender_wins": report.DefenderWins,
		"aborted":       report.Aborted,
		"avg_shots":     report.AvgShots,
		"min_shots":     report.MinShots,
		"max_shots":     report.MaxShots,
	}).Info("report")
}
