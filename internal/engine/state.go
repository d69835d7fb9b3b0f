package engine

import (
	"math"

	"futures_bot/internal/helper"
	"futures_bot/internal/models"
)

// PositionState — явное состояние позиции, выведенное из живых данных
// биржи. Машина состояний неявного polling-цикла, вынесенная наружу,
// чтобы инварианты сверки проверялись без живого API.
type PositionState int

const (
	StateNoPosition PositionState = iota
	StateUnprotected
	StatePartiallyProtected
	StateProtected
	StateBreakevenPromoted
)

func (s PositionState) String() string {
	switch s {
	case StateNoPosition:
		return "no_position"
	case StateUnprotected:
		return "unprotected"
	case StatePartiallyProtected:
		return "partially_protected"
	case StateProtected:
		return "protected"
	case StateBreakevenPromoted:
		return "breakeven_promoted"
	default:
		return "unknown"
	}
}

// DeriveState — состояние позиции по её защитным ордерам. Стоп с
// триггером на цене входа (с точностью до тика) означает уже
// выполненный перевод в безубыток.
func DeriveState(pos models.Position, orders []models.Order, tick float64) PositionState {
	if pos.Qty == 0 {
		return StateNoPosition
	}

	hasTP, hasSL, atEntry := protectiveFlags(pos, orders, tick)

	switch {
	case hasSL && atEntry:
		return StateBreakevenPromoted
	case hasTP && hasSL:
		return StateProtected
	case hasTP || hasSL:
		return StatePartiallyProtected
	default:
		return StateUnprotected
	}
}

func protectiveFlags(pos models.Position, orders []models.Order, tick float64) (hasTP, hasSL, slAtEntry bool) {
	for _, o := range orders {
		if o.Symbol != pos.Symbol || !o.Protective() || !coversSide(o, pos.Side) {
			continue
		}
		switch o.Kind {
		case models.KindTakeProfit:
			hasTP = true
		case models.KindStopLoss:
			hasSL = true
			if triggerAtEntry(o.Trigger, pos.Entry, tick) {
				slAtEntry = true
			}
		}
	}
	return
}

// coversSide: в hedge-режиме ордер несёт positionSide позиции, в one-way
// приходит BOTH и сторону выдаёт направление закрытия.
func coversSide(o models.Order, side models.Side) bool {
	switch o.PositionSide {
	case string(side):
		return true
	case "BOTH", "":
		return o.Side == helper.ExitSide(side)
	default:
		return false
	}
}

func triggerAtEntry(trigger, entry, tick float64) bool {
	if tick <= 0 {
		return trigger == entry
	}
	return math.Abs(trigger-entry) < tick
}

// slOrders — живые стоп-лоссы позиции (для cancel-then-replace).
func slOrders(pos models.Position, orders []models.Order) []models.Order {
	var out []models.Order
	for _, o := range orders {
		if o.Symbol == pos.Symbol && o.Kind == models.KindStopLoss && coversSide(o, pos.Side) {
			out = append(out, o)
		}
	}
	return out
}
