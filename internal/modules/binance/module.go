package binance

import (
	"go.uber.org/fx"

	"futures_bot/internal/modules/binance/service"
)

func Module() fx.Option {
	return fx.Module("binance",
		fx.Provide(
			service.NewClient, // *service.Client
		),
	)
}
