package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

const (
	maxOpenConns = 20
	maxIdleConns = 10
	connMaxLife  = time.Minute * 15
)

// Migrate applies every pending up migration found in migrationDir, a
// source url such as file://db/migration.
func Migrate(db *sql.DB, migrationDir string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(migrationDir, "postgres", driver)
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return fmt.Errorf("database is dirty at version %d", version)
	}
	log.WithField("version", version).Info("current migration version")

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return err
	}
	log.Info("migration successful")
	return nil
}

func MustMigrate(db *sql.DB, migrationDir string) {
	if err := Migrate(db, migrationDir); err != nil {
		panic(err)
	}
}

// Connect opens and pings a postgres pool, then migrates it.
func Connect(psqlUrl, migrationDir string) (*sql.DB, error) {
	db, err := sql.Open("postgres", psqlUrl)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLife)

	if err := Migrate(db, migrationDir); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func MustConnectToDb(psqlUrl, migrationDir string) *sql.DB {
	db, err := Connect(psqlUrl, migrationDir)
	if err != nil {
		panic(err)
	}
	return db
}
