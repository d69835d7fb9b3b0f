package sizing

import (
	"errors"

	"futures_bot/internal/helper"
	"futures_bot/internal/models"
)

// ErrInvalid — правила квантования неизвестны либо сторона не LONG/SHORT.
var ErrInvalid = errors.New("sizing: invalid input")

// Quantity переводит баланс, долю депозита и плечо в количество,
// квантованное вниз до шага. Если плечевой номинал меньше минимального,
// количество пересчитывается от minNotional.
func Quantity(balance, sizePct float64, leverage int, price, step, minNotional float64) (float64, error) {
	if step <= 0 || minNotional <= 0 || price <= 0 {
		return 0, ErrInvalid
	}

	notional := balance * sizePct / 100 * float64(leverage)
	qty := helper.FloorToStep(notional/price, step)

	if notional < minNotional {
		qty = helper.FloorToStep(minNotional/price, step)
	}
	return qty, nil
}

// ProtectivePrices считает уровни тейка и стопа от текущей цены,
// оба квантуются вниз до тика.
func ProtectivePrices(price, takeProfitPct, stopLossPct float64, side models.Side, tick float64) (tp, sl float64, err error) {
	switch side {
	case models.SideLong:
		tp = price * (1 + takeProfitPct/100)
		sl = price * (1 - stopLossPct/100)
	case models.SideShort:
		tp = price * (1 - takeProfitPct/100)
		sl = price * (1 + stopLossPct/100)
	default:
		return 0, 0, ErrInvalid
	}

	tp = helper.FloorToTick(tp, tick)
	sl = helper.FloorToTick(sl, tick)
	return tp, sl, nil
}
