package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) CancelOrder(ctx context.Context, symbol string, orderID int64) error {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("orderId", strconv.FormatInt(orderID, 10))

	if err := c.doSigned(ctx, http.MethodDelete, "/fapi/v1/order", params, nil); err != nil {
		return fmt.Errorf("CancelOrder %s #%d: %w", symbol, orderID, err)
	}
	return nil
}
