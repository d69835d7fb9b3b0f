// Package engine — сверка жизненного цикла ордеров: для каждого
// инструмента держит ровно тот набор ордеров, который требует текущее
// состояние позиции. Никаких своих ID между циклами не хранит — всё
// состояние каждый раз перечитывается с биржи (read-repair).
package engine

import (
	"context"
	"time"

	"futures_bot/internal/models"
	"futures_bot/internal/notify"
)

// Exchange — то, что движку нужно от удалённого API. Узкий интерфейс,
// в тестах подменяется фейком.
type Exchange interface {
	Balance(ctx context.Context) (float64, error)
	GetPrice(ctx context.Context, symbol string) (float64, error)
	GetInstrumentMeta(ctx context.Context, symbol string) (models.Instrument, error)
	OpenPositions(ctx context.Context) ([]models.Position, error)
	OpenOrders(ctx context.Context, symbol string) ([]models.Order, error)
	AllOpenOrders(ctx context.Context) ([]models.Order, error)
	PlaceMarket(ctx context.Context, symbol, side, positionSide string, qty float64) error
	PlaceStop(ctx context.Context, symbol, side, positionSide string, kind models.OrderKind, qty, trigger float64) error
	CancelOrder(ctx context.Context, symbol string, orderID int64) error
	SetLeverage(ctx context.Context, symbol string, leverage int) error
	SetMarginMode(ctx context.Context, symbol, mode string) error
	PositionMode(ctx context.Context) (bool, error)
}

// PriceSource — опциональный кэш свежих цен (websocket-фид).
type PriceSource interface {
	Last(symbol string) (price float64, ok bool)
}

type Config struct {
	MarginMode      string
	PositionSizePct float64
	Leverage        int
	TakeProfitPct   float64
	StopLossPct     float64
	BreakevenROIPct float64
	MaxPerSide      int
	RetryAttempts   int
	RetryDelay      time.Duration
}

type Engine struct {
	ex   Exchange
	cool CooldownStore
	n    notify.Notifier
	feed PriceSource // nil — только REST
	cfg  Config

	sleep func(time.Duration)
	now   func() time.Time
}

func New(ex Exchange, cool CooldownStore, n notify.Notifier, feed PriceSource, cfg Config) *Engine {
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 5
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 5 * time.Second
	}
	return &Engine{
		ex:    ex,
		cool:  cool,
		n:     n,
		feed:  feed,
		cfg:   cfg,
		sleep: time.Sleep,
		now:   time.Now,
	}
}

// lastPrice — цена из кэша фида, если свежая, иначе REST-тикер.
func (e *Engine) lastPrice(ctx context.Context, symbol string) (float64, error) {
	if e.feed != nil {
		if px, ok := e.feed.Last(symbol); ok {
			return px, nil
		}
	}
	return e.ex.GetPrice(ctx, symbol)
}

// positionSide — BOTH в one-way режиме, LONG/SHORT в hedge-режиме.
func (e *Engine) positionSide(ctx context.Context, side models.Side) (string, error) {
	dual, err := e.ex.PositionMode(ctx)
	if err != nil {
		return "", err
	}
	if !dual {
		return "BOTH", nil
	}
	return string(side), nil
}
