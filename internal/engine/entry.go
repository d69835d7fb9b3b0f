package engine

import (
	"context"

	"futures_bot/internal/helper"
	"futures_bot/internal/metrics"
	"futures_bot/internal/models"
	"futures_bot/internal/sizing"
	"futures_bot/pkg/logger"
)

// TryEnter — второй проход: открыть позицию по сигналу. До первой
// пишущей операции проверяются кулдаун и лимит позиций на сторону,
// так что пропуск не оставляет следов на бирже.
func (e *Engine) TryEnter(ctx context.Context, sig models.Signal, meta models.Instrument) error {
	if !sig.Active() {
		return nil
	}

	active, err := e.cool.Active(ctx, sig.Symbol, e.now())
	if err != nil {
		return err
	}
	if active {
		logger.Info("[ENTRY] %s: кулдаун активен, пропуск", sig.Symbol)
		return nil
	}

	positions, err := e.ex.OpenPositions(ctx)
	if err != nil {
		return err
	}
	var sameSide int
	for _, p := range positions {
		if p.Side == sig.Side {
			sameSide++
		}
	}
	if sameSide >= e.cfg.MaxPerSide {
		logger.Info("[ENTRY] %s: лимит %s позиций (%d), пропуск", sig.Symbol, sig.Side, e.cfg.MaxPerSide)
		return nil
	}

	if err := e.ex.SetMarginMode(ctx, sig.Symbol, e.cfg.MarginMode); err != nil {
		return err
	}
	if err := e.ex.SetLeverage(ctx, sig.Symbol, e.cfg.Leverage); err != nil {
		return err
	}

	balance, err := e.ex.Balance(ctx)
	if err != nil {
		return err
	}
	price, err := e.lastPrice(ctx, sig.Symbol)
	if err != nil {
		return err
	}
	qty, err := sizing.Quantity(balance, e.cfg.PositionSizePct, e.cfg.Leverage, price, meta.StepSize, meta.MinNotional)
	if err != nil {
		return err
	}
	tp, sl, err := sizing.ProtectivePrices(price, e.cfg.TakeProfitPct, e.cfg.StopLossPct, sig.Side, meta.TickSize)
	if err != nil {
		return err
	}
	posSide, err := e.positionSide(ctx, sig.Side)
	if err != nil {
		return err
	}

	err = e.withRetry(ctx, "market "+sig.Symbol, func() error {
		return e.ex.PlaceMarket(ctx, sig.Symbol, helper.EntrySide(sig.Side), posSide, qty)
	})
	if err != nil {
		return err
	}
	metrics.OrdersPlaced.WithLabelValues("entry").Inc()

	if err := e.cool.Record(ctx, sig.Symbol, e.now()); err != nil {
		logger.Error("[ENTRY] %s: запись кулдауна: %v", sig.Symbol, err)
	}

	balance, berr := e.ex.Balance(ctx)
	if berr != nil {
		balance = 0
	}
	e.n.Sendf("Открыт %s по %s\nОбъём: %v\nТейк: %.6f\nСтоп: %.6f\nБаланс: %.2f USDT",
		sig.Side, sig.Symbol, qty, tp, sl, balance)

	// уровни пересчитывались от цены сигнала, перепроверяем от свежей
	cur, err := e.lastPrice(ctx, sig.Symbol)
	if err != nil {
		cur = price
	}
	if !protectiveLevelsValid(sig.Side, cur, tp, sl) {
		logger.Error("[ENTRY] %s: уровни TP/SL невалидны при цене %.6f, защита не выставлена", sig.Symbol, cur)
		e.n.Sendf("⚠️ %s: уровни TP/SL невалидны, позиция без защиты до следующего цикла", sig.Symbol)
		return nil
	}

	// чужие защитные ордера по символу мешают новой паре TP/SL
	stale, err := e.ex.OpenOrders(ctx, sig.Symbol)
	if err == nil {
		for _, o := range stale {
			if !o.Protective() {
				continue
			}
			o := o
			cerr := e.withRetry(ctx, "cancel stale "+sig.Symbol, func() error {
				return e.ex.CancelOrder(ctx, o.Symbol, o.OrderID)
			})
			if cerr != nil {
				logger.Error("[ENTRY] %s: снятие старого %s: %v", sig.Symbol, o.Kind, cerr)
				continue
			}
			metrics.OrdersCancelled.Inc()
		}
	}

	// TP и SL ставятся независимо: неудача одного не отменяет второй,
	// недостающий доставит housekeeping на следующем цикле
	err = e.withRetry(ctx, "tp "+sig.Symbol, func() error {
		return e.ex.PlaceStop(ctx, sig.Symbol, helper.ExitSide(sig.Side), posSide, models.KindTakeProfit, qty, tp)
	})
	if err != nil {
		logger.Error("[ENTRY] %s: тейк не выставлен: %v", sig.Symbol, err)
	} else {
		metrics.OrdersPlaced.WithLabelValues("take_profit").Inc()
		e.n.Sendf("Тейк-профит выставлен по %s", sig.Symbol)
	}

	err = e.withRetry(ctx, "sl "+sig.Symbol, func() error {
		return e.ex.PlaceStop(ctx, sig.Symbol, helper.ExitSide(sig.Side), posSide, models.KindStopLoss, qty, sl)
	})
	if err != nil {
		logger.Error("[ENTRY] %s: стоп не выставлен: %v", sig.Symbol, err)
	} else {
		metrics.OrdersPlaced.WithLabelValues("stop_loss").Inc()
		e.n.Sendf("Стоп-лосс выставлен по %s", sig.Symbol)
	}

	return nil
}

// protectiveLevelsValid: тейк строго за ценой, стоп строго до неё.
func protectiveLevelsValid(side models.Side, price, tp, sl float64) bool {
	switch side {
	case models.SideLong:
		return tp > price && sl < price
	case models.SideShort:
		return tp < price && sl > price
	default:
		return false
	}
}
