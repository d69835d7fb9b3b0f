package pricefeed

import (
	"context"

	"go.uber.org/fx"
)

// Module поднимает стример mark-цен.
func Module() fx.Option {
	return fx.Module("pricefeed",
		fx.Provide(
			NewCache,
			NewFeed,
		),
		fx.Invoke(func(lc fx.Lifecycle, f *Feed, ctx context.Context) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					go f.Run(ctx)
					return nil
				},
			})
		}),
	)
}
