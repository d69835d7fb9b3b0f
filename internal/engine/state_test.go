package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"futures_bot/internal/models"
)

func TestDeriveState(t *testing.T) {
	t.Parallel()

	pos := models.Position{Symbol: "BTCUSDT", Side: models.SideLong, Qty: 5, Entry: 100}
	tp := models.Order{Symbol: "BTCUSDT", Kind: models.KindTakeProfit, Side: "SELL", Trigger: 105}
	sl := models.Order{Symbol: "BTCUSDT", Kind: models.KindStopLoss, Side: "SELL", Trigger: 98}
	slEntry := models.Order{Symbol: "BTCUSDT", Kind: models.KindStopLoss, Side: "SELL", Trigger: 100}

	tests := []struct {
		name   string
		pos    models.Position
		orders []models.Order
		want   PositionState
	}{
		{"no position", models.Position{Symbol: "BTCUSDT"}, nil, StateNoPosition},
		{"unprotected", pos, nil, StateUnprotected},
		{"only tp", pos, []models.Order{tp}, StatePartiallyProtected},
		{"only sl", pos, []models.Order{sl}, StatePartiallyProtected},
		{"protected", pos, []models.Order{tp, sl}, StateProtected},
		{"breakeven", pos, []models.Order{tp, slEntry}, StateBreakevenPromoted},
		{"breakeven without tp", pos, []models.Order{slEntry}, StateBreakevenPromoted},
		{
			"foreign symbol ignored",
			pos,
			[]models.Order{{Symbol: "ETHUSDT", Kind: models.KindTakeProfit, Side: "SELL", Trigger: 105}},
			StateUnprotected,
		},
		{
			"same-side order ignored",
			pos,
			[]models.Order{{Symbol: "BTCUSDT", Kind: models.KindStopLoss, Side: "BUY", Trigger: 98}},
			StateUnprotected,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DeriveState(tt.pos, tt.orders, 0.1))
		})
	}
}

func TestTriggerAtEntryTickTolerance(t *testing.T) {
	t.Parallel()

	// квантование триггера вниз до тика не ломает распознавание безубытка
	assert.True(t, triggerAtEntry(99.95, 100, 0.1))
	assert.False(t, triggerAtEntry(99.8, 100, 0.1))
	assert.True(t, triggerAtEntry(100, 100, 0))
	assert.False(t, triggerAtEntry(99.9999, 100, 0))
}

func TestHedgeModeOrdersMatchByPositionSide(t *testing.T) {
	t.Parallel()

	pos := models.Position{Symbol: "BTCUSDT", Side: models.SideShort, Qty: 1, Entry: 100}
	orders := []models.Order{
		{Symbol: "BTCUSDT", Kind: models.KindTakeProfit, Side: "BUY", PositionSide: "SHORT", Trigger: 95},
		{Symbol: "BTCUSDT", Kind: models.KindStopLoss, Side: "SELL", PositionSide: "LONG", Trigger: 98},
	}

	// стоп лонговой ноги не защищает шорт
	assert.Equal(t, StatePartiallyProtected, DeriveState(pos, orders, 0.1))
}
