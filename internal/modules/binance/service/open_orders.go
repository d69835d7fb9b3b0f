package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"futures_bot/internal/models"
)

// OpenOrders — открытые ордера по символу.
func (c *Client) OpenOrders(ctx context.Context, symbol string) ([]models.Order, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	return c.openOrders(ctx, params)
}

// AllOpenOrders — открытые ордера по всему аккаунту (для housekeeping-прохода).
func (c *Client) AllOpenOrders(ctx context.Context) ([]models.Order, error) {
	return c.openOrders(ctx, nil)
}

func (c *Client) openOrders(ctx context.Context, params url.Values) ([]models.Order, error) {
	var rows []openOrder
	if err := c.doSigned(ctx, http.MethodGet, "/fapi/v1/openOrders", params, &rows); err != nil {
		return nil, fmt.Errorf("open orders: %w", err)
	}

	res := make([]models.Order, 0, len(rows))
	for _, r := range rows {
		qty, _ := strconv.ParseFloat(r.OrigQty, 64)
		trigger, _ := strconv.ParseFloat(r.StopPrice, 64)

		kind := models.KindOther
		switch r.Type {
		case "TAKE_PROFIT_MARKET":
			kind = models.KindTakeProfit
		case "STOP_MARKET":
			kind = models.KindStopLoss
		}

		res = append(res, models.Order{
			Symbol:       r.Symbol,
			OrderID:      r.OrderID,
			Kind:         kind,
			Side:         r.Side,
			PositionSide: r.PositionSide,
			Qty:          qty,
			Trigger:      trigger,
		})
	}
	return res, nil
}
