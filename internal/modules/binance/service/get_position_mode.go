package service

import (
	"context"
	"fmt"
	"net/http"
)

// PositionMode — true, если аккаунт в hedge-режиме (dual side).
func (c *Client) PositionMode(ctx context.Context) (bool, error) {
	var resp positionModeResponse
	if err := c.doSigned(ctx, http.MethodGet, "/fapi/v1/positionSide/dual", nil, &resp); err != nil {
		return false, fmt.Errorf("position mode: %w", err)
	}
	return resp.DualSidePosition, nil
}
