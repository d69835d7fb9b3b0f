package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// Balance — баланс кошелька в USDT.
func (c *Client) Balance(ctx context.Context) (float64, error) {
	var entries []balanceEntry
	if err := c.doSigned(ctx, http.MethodGet, "/fapi/v2/balance", nil, &entries); err != nil {
		return 0, fmt.Errorf("balance: %w", err)
	}

	for _, e := range entries {
		if e.Asset != "USDT" {
			continue
		}
		v, err := strconv.ParseFloat(e.Balance, 64)
		if err != nil {
			return 0, fmt.Errorf("balance parse: %v (%q)", err, e.Balance)
		}
		return v, nil
	}
	return 0, fmt.Errorf("balance: no USDT asset in response")
}
