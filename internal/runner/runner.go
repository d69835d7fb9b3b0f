// Package runner — однопоточный управляющий цикл: каждый интервал
// housekeeping, затем проход по всем инструментам со стратегией.
package runner

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"

	"futures_bot/internal/engine"
	"futures_bot/internal/indicator"
	"futures_bot/internal/metrics"
	"futures_bot/internal/models"
	"futures_bot/internal/modules/binance/service"
	healthsrv "futures_bot/internal/modules/health/service"
	"futures_bot/internal/notify"
	"futures_bot/internal/strategy"
	"futures_bot/pkg/logger"
)

const klinesLimit = 100

// Market — рыночные данные, которые циклу нужны помимо движка.
type Market interface {
	GetKlines(ctx context.Context, symbol, interval string, limit int) ([]models.Candle, error)
	GetInstrumentMeta(ctx context.Context, symbol string) (models.Instrument, error)
	ListInstruments(ctx context.Context) ([]string, error)
	OpenPositions(ctx context.Context) ([]models.Position, error)
}

type Runner struct {
	market    Market
	eng       *engine.Engine
	n         notify.Notifier
	state     *healthsrv.State
	timeframe string
	interval  time.Duration
}

func New(market Market, eng *engine.Engine, n notify.Notifier, state *healthsrv.State, timeframe string, interval time.Duration) *Runner {
	return &Runner{
		market:    market,
		eng:       eng,
		n:         n,
		state:     state,
		timeframe: timeframe,
		interval:  interval,
	}
}

// Run крутит цикл до отмены контекста. Ошибка одного прохода не
// останавливает следующий.
func (r *Runner) Run(ctx context.Context) {
	r.n.Send("Бот запущен и готов к работе.")

	for {
		r.sweep(ctx)

		select {
		case <-ctx.Done():
			return
		case <-time.After(r.interval):
		}
	}
}

func (r *Runner) sweep(ctx context.Context) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "sweep")
	defer span.Finish()
	started := time.Now()

	if err := r.eng.Housekeep(ctx); err != nil {
		logger.Error("[SWEEP] housekeeping: %v", err)
	}

	symbols, err := r.market.ListInstruments(ctx)
	if err != nil {
		logger.Error("[SWEEP] список инструментов: %v", err)
		return
	}

	for _, symbol := range symbols {
		if ctx.Err() != nil {
			return
		}
		r.processInstrument(ctx, symbol)
	}

	if positions, err := r.market.OpenPositions(ctx); err == nil {
		metrics.OpenPositions.Set(float64(len(positions)))
	}

	metrics.Sweeps.Inc()
	r.state.TouchSweep(time.Now(), len(symbols))
	r.state.SetReady(true)
	logger.Info("[SWEEP] %d инструментов за %s", len(symbols), time.Since(started).Round(time.Millisecond))
}

func (r *Runner) processInstrument(ctx context.Context, symbol string) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "instrument")
	span.SetTag("symbol", symbol)
	defer span.Finish()

	defer func() {
		if p := recover(); p != nil {
			logger.Error("[SWEEP] %s: panic: %v", symbol, p)
		}
	}()

	candles, err := r.market.GetKlines(ctx, symbol, r.timeframe, klinesLimit)
	if err != nil {
		logger.Error("[SWEEP] %s: klines: %v", symbol, err)
		return
	}

	series := indicator.Decorate(symbol, candles)
	sig := strategy.Evaluate(series)
	if !sig.Active() {
		return
	}

	metrics.Signals.WithLabelValues(string(sig.Side)).Inc()
	r.n.Sendf("🟦🟦🟦 %s %s @ %.6f 🟦🟦🟦", sig.Side, symbol, sig.Price)
	logger.Info("[SIGNAL] %s %s @ %.6f", sig.Side, symbol, sig.Price)

	meta, err := r.market.GetInstrumentMeta(ctx, symbol)
	if err != nil {
		if service.IsTransient(err) {
			logger.Error("[SWEEP] %s: метаданные: %v", symbol, err)
		}
		// нет в exchangeInfo — инструмент не торгуется, молча дальше
		return
	}

	if err := r.eng.TryEnter(ctx, sig, meta); err != nil {
		logger.Error("[ENTRY] %s: %v", symbol, err)
	}
}
