package helper

import (
	"math"

	"futures_bot/internal/models"
)

// FloorToStep квантует количество вниз до ближайшего кратного шага.
// Усечение, не округление: биржа отклоняет количество выше допустимого.
func FloorToStep(qty, step float64) float64 {
	if step <= 0 {
		return qty
	}
	steps := math.Floor(qty/step + 1e-9)
	return steps * step
}

// FloorToTick — то же самое для цены.
func FloorToTick(px, tick float64) float64 {
	if tick <= 0 {
		return px
	}
	steps := math.Floor(px/tick + 1e-12)
	return steps * tick
}

// EntrySide — сторона рыночного ордера на вход.
func EntrySide(side models.Side) string {
	if side == models.SideShort {
		return "SELL"
	}
	return "BUY"
}

// ExitSide — сторона закрывающего (защитного) ордера.
func ExitSide(side models.Side) string {
	if side == models.SideShort {
		return "BUY"
	}
	return "SELL"
}
