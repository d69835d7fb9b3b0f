package engine

import (
	"context"

	"futures_bot/internal/helper"
	"futures_bot/internal/metrics"
	"futures_bot/internal/models"
	"futures_bot/internal/sizing"
	"futures_bot/pkg/logger"
)

// Housekeep — первый проход цикла: снять осиротевшие защитные ордера,
// перевести прибыльные стопы в безубыток, восстановить недостающие
// TP/SL. Ошибка по одному символу не прерывает остальные.
func (e *Engine) Housekeep(ctx context.Context) error {
	orders, err := e.ex.AllOpenOrders(ctx)
	if err != nil {
		return err
	}
	positions, err := e.ex.OpenPositions(ctx)
	if err != nil {
		return err
	}

	held := make(map[string]bool, len(positions))
	for _, p := range positions {
		held[p.Symbol] = true
	}

	// осиротевшие защитные ордера: позиции нет, а TP/SL висит
	for _, o := range orders {
		if !o.Protective() || held[o.Symbol] {
			continue
		}
		o := o
		err := e.withRetry(ctx, "cancel "+o.Symbol, func() error {
			return e.ex.CancelOrder(ctx, o.Symbol, o.OrderID)
		})
		if err != nil {
			logger.Error("[SWEEP] %s: снятие ордера %d: %v", o.Symbol, o.OrderID, err)
			continue
		}
		metrics.OrdersCancelled.Inc()
		logger.Info("[SWEEP] %s: снят %s без позиции", o.Symbol, o.Kind)
	}

	for _, pos := range positions {
		if err := e.reconcilePosition(ctx, pos, orders); err != nil {
			logger.Error("[SWEEP] %s: сверка позиции: %v", pos.Symbol, err)
		}
	}
	return nil
}

func (e *Engine) reconcilePosition(ctx context.Context, pos models.Position, all []models.Order) error {
	meta, err := e.ex.GetInstrumentMeta(ctx, pos.Symbol)
	if err != nil {
		return err
	}

	var orders []models.Order
	for _, o := range all {
		if o.Symbol == pos.Symbol {
			orders = append(orders, o)
		}
	}

	price, err := e.lastPrice(ctx, pos.Symbol)
	if err != nil {
		return err
	}

	state := DeriveState(pos, orders, meta.TickSize)

	if pos.ROIPct(price) > e.cfg.BreakevenROIPct && state != StateBreakevenPromoted {
		placed, err := e.promoteBreakeven(ctx, pos, orders, meta)
		if err != nil {
			return err
		}
		// старые стопы сняты, новый учитываем, чтобы не поставить второй
		orders = append(dropStops(pos, orders), placed)
	}

	return e.restoreProtection(ctx, pos, orders, meta, price)
}

// promoteBreakeven переносит стоп на цену входа: старые стопы снимаются,
// затем ставится один новый. Повторный вызов на уже переведённой позиции
// исключён проверкой состояния выше.
func (e *Engine) promoteBreakeven(ctx context.Context, pos models.Position, orders []models.Order, meta models.Instrument) (models.Order, error) {
	for _, o := range slOrders(pos, orders) {
		o := o
		err := e.withRetry(ctx, "cancel sl "+o.Symbol, func() error {
			return e.ex.CancelOrder(ctx, o.Symbol, o.OrderID)
		})
		if err != nil {
			return models.Order{}, err
		}
		metrics.OrdersCancelled.Inc()
	}

	side, err := e.positionSide(ctx, pos.Side)
	if err != nil {
		return models.Order{}, err
	}
	trigger := helper.FloorToTick(pos.Entry, meta.TickSize)

	err = e.withRetry(ctx, "breakeven "+pos.Symbol, func() error {
		return e.ex.PlaceStop(ctx, pos.Symbol, helper.ExitSide(pos.Side), side, models.KindStopLoss, pos.Qty, trigger)
	})
	if err != nil {
		return models.Order{}, err
	}

	metrics.OrdersPlaced.WithLabelValues("breakeven").Inc()
	e.n.Sendf("🛡 %s: стоп переведён в безубыток @ %.6f", pos.Symbol, trigger)

	return models.Order{
		Symbol:       pos.Symbol,
		Kind:         models.KindStopLoss,
		Side:         helper.ExitSide(pos.Side),
		PositionSide: side,
		Qty:          pos.Qty,
		Trigger:      trigger,
	}, nil
}

// restoreProtection доставляет недостающие TP/SL. Размер считается от
// текущего баланса и цены, как при входе.
func (e *Engine) restoreProtection(ctx context.Context, pos models.Position, orders []models.Order, meta models.Instrument, price float64) error {
	hasTP, hasSL, _ := protectiveFlags(pos, orders, meta.TickSize)
	if hasTP && hasSL {
		return nil
	}

	balance, err := e.ex.Balance(ctx)
	if err != nil {
		return err
	}
	qty, err := sizing.Quantity(balance, e.cfg.PositionSizePct, e.cfg.Leverage, price, meta.StepSize, meta.MinNotional)
	if err != nil {
		return err
	}
	tp, sl, err := sizing.ProtectivePrices(price, e.cfg.TakeProfitPct, e.cfg.StopLossPct, pos.Side, meta.TickSize)
	if err != nil {
		return err
	}
	side, err := e.positionSide(ctx, pos.Side)
	if err != nil {
		return err
	}

	if !hasTP {
		err := e.withRetry(ctx, "restore tp "+pos.Symbol, func() error {
			return e.ex.PlaceStop(ctx, pos.Symbol, helper.ExitSide(pos.Side), side, models.KindTakeProfit, qty, tp)
		})
		if err != nil {
			return err
		}
		metrics.OrdersPlaced.WithLabelValues("take_profit").Inc()
		logger.Info("[SWEEP] %s: восстановлен TP @ %.6f", pos.Symbol, tp)
	}

	if !hasSL {
		err := e.withRetry(ctx, "restore sl "+pos.Symbol, func() error {
			return e.ex.PlaceStop(ctx, pos.Symbol, helper.ExitSide(pos.Side), side, models.KindStopLoss, qty, sl)
		})
		if err != nil {
			return err
		}
		metrics.OrdersPlaced.WithLabelValues("stop_loss").Inc()
		logger.Info("[SWEEP] %s: восстановлен SL @ %.6f", pos.Symbol, sl)
	}
	return nil
}

func dropStops(pos models.Position, orders []models.Order) []models.Order {
	out := orders[:0]
	for _, o := range orders {
		if o.Kind == models.KindStopLoss && coversSide(o, pos.Side) {
			continue
		}
		out = append(out, o)
	}
	return out
}
