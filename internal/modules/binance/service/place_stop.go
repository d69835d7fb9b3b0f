package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"futures_bot/internal/models"
)

// PlaceStop — защитный ордер: TAKE_PROFIT_MARKET или STOP_MARKET
// с триггерной ценой.
func (c *Client) PlaceStop(
	ctx context.Context,
	symbol string,
	side string,
	positionSide string,
	kind models.OrderKind,
	qty float64,
	trigger float64,
) error {
	if qty <= 0 {
		return fmt.Errorf("PlaceStop: qty <= 0")
	}
	if trigger <= 0 {
		return fmt.Errorf("PlaceStop: trigger <= 0")
	}

	var ordType string
	switch kind {
	case models.KindTakeProfit:
		ordType = "TAKE_PROFIT_MARKET"
	case models.KindStopLoss:
		ordType = "STOP_MARKET"
	default:
		return fmt.Errorf("PlaceStop: unsupported kind %q", kind)
	}

	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("side", side)
	params.Set("type", ordType)
	params.Set("quantity", formatQty(qty))
	params.Set("stopPrice", formatPrice(trigger))
	params.Set("positionSide", positionSide)

	var resp orderResponse
	if err := c.doSigned(ctx, http.MethodPost, "/fapi/v1/order", params, &resp); err != nil {
		return fmt.Errorf("PlaceStop %s %s: %w", symbol, ordType, err)
	}
	return nil
}
