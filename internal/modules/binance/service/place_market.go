package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// PlaceMarket — рыночный ордер на вход.
func (c *Client) PlaceMarket(ctx context.Context, symbol, side, positionSide string, qty float64) error {
	if qty <= 0 {
		return fmt.Errorf("PlaceMarket: qty <= 0")
	}

	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("side", side)
	params.Set("type", "MARKET")
	params.Set("quantity", formatQty(qty))
	params.Set("positionSide", positionSide)

	var resp orderResponse
	if err := c.doSigned(ctx, http.MethodPost, "/fapi/v1/order", params, &resp); err != nil {
		return fmt.Errorf("PlaceMarket %s %s: %w", symbol, side, err)
	}
	return nil
}
