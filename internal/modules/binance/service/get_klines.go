package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"futures_bot/internal/models"
)

// GetKlines возвращает закрытые бары OHLCV.
// Формат ряда: [openTime, "o", "h", "l", "c", "v", closeTime, ...].
func (c *Client) GetKlines(ctx context.Context, symbol, interval string, limit int) ([]models.Candle, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("interval", interval)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	var rows [][]any
	if err := c.doPublic(ctx, "/fapi/v1/klines", params, &rows); err != nil {
		return nil, fmt.Errorf("klines %s: %w", symbol, err)
	}

	candles := make([]models.Candle, 0, len(rows))
	for _, row := range rows {
		if len(row) < 6 {
			continue
		}
		tsMs, ok := row[0].(float64)
		if !ok {
			continue
		}

		open, err1 := parseField(row[1])
		high, err2 := parseField(row[2])
		low, err3 := parseField(row[3])
		closePx, err4 := parseField(row[4])
		volume, err5 := parseField(row[5])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			continue
		}

		candles = append(candles, models.Candle{
			Time:   time.UnixMilli(int64(tsMs)),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePx,
			Volume: volume,
		})
	}
	return candles, nil
}

func parseField(v any) (float64, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected kline field type %T", v)
	}
	return strconv.ParseFloat(s, 64)
}
