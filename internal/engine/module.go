package engine

import (
	"context"

	"go.uber.org/fx"

	enginepg "futures_bot/internal/engine/pg"
	"futures_bot/internal/modules/binance/service"
	"futures_bot/internal/modules/config"
	"futures_bot/internal/notify"
	"futures_bot/internal/pricefeed"
	"futures_bot/pkg/db"
	"futures_bot/pkg/logger"
)

func newConfig(cfg *config.Config) Config {
	return Config{
		MarginMode:      cfg.Binance.MarginMode,
		PositionSizePct: cfg.Binance.PositionSizePct,
		Leverage:        cfg.Binance.Leverage,
		TakeProfitPct:   cfg.Binance.TakeProfitPct,
		StopLossPct:     cfg.Binance.StopLossPct,
		BreakevenROIPct: cfg.Engine.BreakevenROIPct,
		MaxPerSide:      cfg.Engine.MaxPerSide,
		RetryAttempts:   cfg.Engine.RetryAttempts,
		RetryDelay:      cfg.Engine.RetryDelay,
	}
}

// newCooldownStore: Postgres при заданном DSN, иначе память.
func newCooldownStore(ctx context.Context, cfg *config.Config) (CooldownStore, error) {
	if cfg.DB == "" {
		return NewMemoryCooldown(cfg.Engine.Cooldown), nil
	}

	pool, err := db.NewPool(ctx, db.PoolConfig{DSN: cfg.DB})
	if err != nil {
		return nil, err
	}
	store := enginepg.NewCooldownStore(db.NewPgTxManager(pool), cfg.Engine.Cooldown)
	if err := store.InitSchema(ctx); err != nil {
		return nil, err
	}
	logger.Info("cooldown store: postgres")
	return store, nil
}

func newEngine(client *service.Client, cool CooldownStore, n notify.Notifier, cache *pricefeed.Cache, cfg *config.Config) *Engine {
	return New(client, cool, n, cache, newConfig(cfg))
}

func Module() fx.Option {
	return fx.Module("engine",
		fx.Provide(
			newCooldownStore,
			newEngine,
		),
	)
}
