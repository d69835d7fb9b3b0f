package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) SetLeverage(ctx context.Context, symbol string, leverage int) error {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("leverage", strconv.Itoa(leverage))

	if err := c.doSigned(ctx, http.MethodPost, "/fapi/v1/leverage", params, nil); err != nil {
		return fmt.Errorf("SetLeverage %s: %w", symbol, err)
	}
	return nil
}
