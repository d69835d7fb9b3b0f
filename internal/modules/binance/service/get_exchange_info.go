package service

import (
	"context"
	"fmt"
	"strconv"

	"futures_bot/internal/models"
)

// GetInstrumentMeta вытаскивает правила квантования символа из exchangeInfo.
// Отсутствующий символ — ErrInstrumentNotFound, не ошибка цикла.
func (c *Client) GetInstrumentMeta(ctx context.Context, symbol string) (models.Instrument, error) {
	var payload exchangeInfoResponse
	if err := c.doPublic(ctx, "/fapi/v1/exchangeInfo", nil, &payload); err != nil {
		return models.Instrument{}, fmt.Errorf("exchangeInfo: %w", err)
	}

	for _, s := range payload.Symbols {
		if s.Symbol != symbol {
			continue
		}

		inst := models.Instrument{Symbol: symbol}
		for _, f := range s.Filters {
			switch f.FilterType {
			case "LOT_SIZE":
				inst.StepSize, _ = strconv.ParseFloat(f.StepSize, 64)
			case "PRICE_FILTER":
				inst.TickSize, _ = strconv.ParseFloat(f.TickSize, 64)
			case "MIN_NOTIONAL":
				inst.MinNotional, _ = strconv.ParseFloat(f.Notional, 64)
			}
		}
		if inst.StepSize <= 0 || inst.TickSize <= 0 {
			return models.Instrument{}, fmt.Errorf("%w: %s has no quantization filters", ErrInstrumentNotFound, symbol)
		}
		return inst, nil
	}

	return models.Instrument{}, fmt.Errorf("%w: %s", ErrInstrumentNotFound, symbol)
}

// ListInstruments — все торгуемые USDT-перпетуалы.
func (c *Client) ListInstruments(ctx context.Context) ([]string, error) {
	var payload exchangeInfoResponse
	if err := c.doPublic(ctx, "/fapi/v1/exchangeInfo", nil, &payload); err != nil {
		return nil, fmt.Errorf("exchangeInfo: %w", err)
	}

	symbols := make([]string, 0, len(payload.Symbols))
	for _, s := range payload.Symbols {
		if s.Status != "TRADING" || s.QuoteAsset != "USDT" || s.ContractType != "PERPETUAL" {
			continue
		}
		symbols = append(symbols, s.Symbol)
	}
	return symbols, nil
}
