package sqlc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

// MatchRecord is the aggregate outcome of one finished match.
type MatchRecord struct {
	Attacker string
	Defender string
	Winner   string
	Shots    int
	Width    int
	Height   int
}

// AnalyticsManager records match statistics for one server host. Every call
// runs under QuerierCtxTimeout.
type AnalyticsManager struct {
	db       *sql.DB
	queries  *Queries
	serverIp pqtype.Inet
}

func NewAnalyticsManager(db *sql.DB, serverIp pqtype.Inet) *AnalyticsManager {
	return &AnalyticsManager{db: db, queries: New(db), serverIp: serverIp}
}

// execTx runs fn inside one transaction, rolling back if fn fails.
func (a *AnalyticsManager) execTx(ctx context.Context, fn func(q *Queries) error) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(a.queries.WithTx(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback failed: %w", rbErr))
		}
		return err
	}
	return tx.Commit()
}

func (a *AnalyticsManager) ServerIp() pqtype.Inet {
	return a.serverIp
}

func (a *AnalyticsManager) IncrementGamesCreatedCount(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.IncrementGamesCreatedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) IncrementRematchCalledCount(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.IncrementRematchCalledCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) GetGamesCreatedCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.GetGamesCreatedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) GetRematchCalledCount(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.GetRematchCalledCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) CountMatchResults(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()
	return a.queries.CountMatchResults(ctx, a.serverIp)
}

// RecordMatch stores the outcome and bumps the games created counter in one
// transaction.
func (a *AnalyticsManager) RecordMatch(ctx context.Context, rec MatchRecord) error {
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	return a.execTx(ctx, func(q *Queries) error {
		return a.recordMatch(ctx, q, rec)
	})
}

func (a *AnalyticsManager) recordMatch(ctx context.Context, q *Queries, rec MatchRecord) error {
	err := q.InsertMatchResult(ctx, InsertMatchResultParams{
		ID:       uuid.New(),
		Attacker: rec.Attacker,
		Defender: rec.Defender,
		Winner:   rec.Winner,
		Shots:    int32(rec.Shots),
		Width:    int32(rec.Width),
		Height:   int32(rec.Height),
		ServerIp: a.serverIp,
	})
	if err != nil {
		return fmt.Errorf("failed to insert match result: %w", err)
	}

	if err := q.IncrementGamesCreatedCount(ctx, a.serverIp); err != nil {
		return fmt.Errorf("failed to increment games created: %w", err)
	}
	return nil
}
