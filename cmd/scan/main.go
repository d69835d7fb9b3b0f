// scan — разовый прогон стратегии по всем инструментам без торговли.
// Печатает сигналы и выходит; ключи API не нужны, только публичные
// эндпоинты. Удобно для проверки параметров перед запуском бота.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"futures_bot/internal/indicator"
	"futures_bot/internal/modules/binance/service"
	"futures_bot/internal/modules/config"
	"futures_bot/internal/sizing"
	"futures_bot/internal/strategy"
	"futures_bot/pkg/logger"
)

const klinesLimit = 100

func main() {
	if err := logger.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	viper.SetConfigName("scan")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("configs")
	viper.SetDefault("timeframe", "15m")
	viper.SetDefault("timeout", "10m")
	viper.SetDefault("symbol", "") // пусто — весь рынок
	viper.SetDefault("take_profit_pct", 5.0)
	viper.SetDefault("stop_loss_pct", 2.0)
	viper.AutomaticEnv()
	_ = viper.ReadInConfig() // без файла работаем на дефолтах

	if err := run(); err != nil {
		logger.Fatal("scan: %v", err)
	}
}

func run() error {
	timeframe := viper.GetString("timeframe")
	ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration("timeout"))
	defer cancel()

	cfg := &config.Config{}
	cfg.Binance.APIKey = "scan"
	cfg.Binance.APISecret = "scan"
	client := service.NewClient(cfg)

	var symbols []string
	if one := viper.GetString("symbol"); one != "" {
		symbols = []string{one}
	} else {
		var err error
		symbols, err = client.ListInstruments(ctx)
		if err != nil {
			return errors.Wrap(err, "list instruments")
		}
	}

	started := time.Now()
	var found int
	for _, symbol := range symbols {
		candles, err := client.GetKlines(ctx, symbol, timeframe, klinesLimit)
		if err != nil {
			logger.Error("%s: klines: %v", symbol, err)
			continue
		}
		sig := strategy.Evaluate(indicator.Decorate(symbol, candles))
		if !sig.Active() {
			continue
		}
		found++

		meta, err := client.GetInstrumentMeta(ctx, symbol)
		if err != nil {
			fmt.Printf("%-14s %-5s @ %.6f\n", sig.Symbol, sig.Side, sig.Price)
			continue
		}
		tp, sl, err := sizing.ProtectivePrices(sig.Price,
			viper.GetFloat64("take_profit_pct"), viper.GetFloat64("stop_loss_pct"),
			sig.Side, meta.TickSize)
		if err != nil {
			continue
		}
		fmt.Printf("%-14s %-5s @ %.6f  tp=%.6f sl=%.6f\n", sig.Symbol, sig.Side, sig.Price, tp, sl)
	}

	fmt.Printf("%d сигналов из %d инструментов за %s\n", found, len(symbols), time.Since(started).Round(time.Second))
	return nil
}
