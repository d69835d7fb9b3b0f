package runner

import (
	"context"

	"go.uber.org/fx"

	"futures_bot/internal/engine"
	"futures_bot/internal/modules/binance/service"
	"futures_bot/internal/modules/config"
	healthsrv "futures_bot/internal/modules/health/service"
	"futures_bot/internal/notify"
)

func newRunner(client *service.Client, eng *engine.Engine, n notify.Notifier, state *healthsrv.State, cfg *config.Config) *Runner {
	return New(client, eng, n, state, cfg.Engine.Timeframe, cfg.Engine.SweepInterval)
}

func Module() fx.Option {
	return fx.Module("runner",
		fx.Provide(newRunner),
		fx.Invoke(func(lc fx.Lifecycle, r *Runner, ctx context.Context) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					go r.Run(ctx)
					return nil
				},
			})
		}),
	)
}
