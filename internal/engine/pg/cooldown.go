// Package pg — кулдауны входов в Postgres: переживают рестарт бота.
package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	pkgerrors "github.com/pkg/errors"

	"futures_bot/pkg/db"
)

type CooldownStore struct {
	tm     db.TxManager
	window time.Duration
}

func NewCooldownStore(tm db.TxManager, window time.Duration) *CooldownStore {
	return &CooldownStore{tm: tm, window: window}
}

// InitSchema создаёт таблицу при старте. Миграций у бота нет, одна
// таблица не стоит отдельного инструмента.
func (s *CooldownStore) InitSchema(ctx context.Context) error {
	_, err := s.tm.Conn().Exec(ctx, `
		CREATE TABLE IF NOT EXISTS entry_cooldowns (
			symbol     TEXT PRIMARY KEY,
			entered_at TIMESTAMPTZ NOT NULL
		)`)
	return pkgerrors.Wrap(err, "init entry_cooldowns")
}

func (s *CooldownStore) Record(ctx context.Context, symbol string, at time.Time) error {
	return s.tm.RunMaster(ctx, func(ctxTx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctxTx, `
			INSERT INTO entry_cooldowns (symbol, entered_at)
			VALUES ($1, $2)
			ON CONFLICT (symbol) DO UPDATE SET entered_at = EXCLUDED.entered_at`,
			symbol, at)
		return pkgerrors.Wrap(err, "record cooldown")
	})
}

func (s *CooldownStore) Active(ctx context.Context, symbol string, now time.Time) (bool, error) {
	var at time.Time
	err := s.tm.Conn().QueryRow(ctx,
		`SELECT entered_at FROM entry_cooldowns WHERE symbol = $1`, symbol).Scan(&at)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, pkgerrors.Wrap(err, "read cooldown")
	}
	return now.Sub(at) < s.window, nil
}
