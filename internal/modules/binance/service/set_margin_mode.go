package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Код -4046: "No need to change margin type" — режим уже выставлен.
const marginAlreadySet = -4046

// SetMarginMode идемпотентен: "уже установлен" считается успехом.
func (c *Client) SetMarginMode(ctx context.Context, symbol, mode string) error {
	marginType := "CROSSED"
	if strings.EqualFold(mode, "isolated") {
		marginType = "ISOLATED"
	}

	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("marginType", marginType)

	err := c.doSigned(ctx, http.MethodPost, "/fapi/v1/marginType", params, nil)
	if err != nil {
		var ae *APIError
		if errors.As(err, &ae) && ae.Code == marginAlreadySet {
			return nil
		}
		return fmt.Errorf("SetMarginMode %s: %w", symbol, err)
	}
	return nil
}
