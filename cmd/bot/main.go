package main

import (
	"context"
	"log"

	"go.uber.org/fx"

	"futures_bot/internal/engine"
	"futures_bot/internal/modules/binance"
	"futures_bot/internal/modules/config"
	"futures_bot/internal/modules/health"
	"futures_bot/internal/notify"
	"futures_bot/internal/pricefeed"
	"futures_bot/internal/runner"
	"futures_bot/pkg/logger"
	"futures_bot/pkg/tracing"
)

const serviceName = "futures_bot"

func main() {
	logger.SetServiceName(serviceName)
	if err := logger.Init(); err != nil {
		log.Fatal(err)
	}

	app := fx.New(
		fx.Provide(
			func() context.Context {
				return context.Background()
			},
			notify.New,
		),
		config.Module(),
		binance.Module(),
		health.Module(),
		pricefeed.Module(),
		engine.Module(),
		runner.Module(),
		fx.Invoke(initTracing),
	)
	if err := app.Start(context.Background()); err != nil {
		log.Fatal(err)
	}
	<-app.Done()
	if err := app.Stop(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func initTracing(lc fx.Lifecycle, cfg *config.Config) error {
	if cfg.Jaeger.Host == "" {
		return nil
	}
	tracing.SetServiceName(serviceName)
	_, closeTracer, err := tracing.InitTracer(tracing.Config{
		Host: cfg.Jaeger.Host,
		Port: cfg.Jaeger.Port,
	})
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			closeTracer()
			return nil
		},
	})
	return nil
}
