package service

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"futures_bot/internal/models"
)

// OpenPositions возвращает позиции с ненулевым объёмом.
// В one-way режиме positionSide приходит как BOTH — сторона берётся
// из знака positionAmt.
func (c *Client) OpenPositions(ctx context.Context) ([]models.Position, error) {
	var rows []positionRisk
	if err := c.doSigned(ctx, http.MethodGet, "/fapi/v2/positionRisk", nil, &rows); err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	res := make([]models.Position, 0, len(rows))
	for _, r := range rows {
		amt, _ := strconv.ParseFloat(r.PositionAmt, 64)
		if amt == 0 {
			continue
		}
		entry, _ := strconv.ParseFloat(r.EntryPrice, 64)
		lev, _ := strconv.Atoi(r.Leverage)

		side := models.SideLong
		switch r.PositionSide {
		case "LONG":
		case "SHORT":
			side = models.SideShort
		default: // BOTH
			if amt < 0 {
				side = models.SideShort
			}
		}

		res = append(res, models.Position{
			Symbol:   r.Symbol,
			Side:     side,
			Qty:      math.Abs(amt),
			Entry:    entry,
			Leverage: lev,
		})
	}
	return res, nil
}
