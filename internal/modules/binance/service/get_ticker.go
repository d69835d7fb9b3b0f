package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

func (c *Client) GetPrice(ctx context.Context, symbol string) (float64, error) {
	params := url.Values{}
	params.Set("symbol", symbol)

	var t tickerPrice
	if err := c.doPublic(ctx, "/fapi/v1/ticker/price", params, &t); err != nil {
		return 0, fmt.Errorf("ticker %s: %w", symbol, err)
	}

	px, err := strconv.ParseFloat(t.Price, 64)
	if err != nil || px <= 0 {
		return 0, fmt.Errorf("ticker %s: bad price %q", symbol, t.Price)
	}
	return px, nil
}
