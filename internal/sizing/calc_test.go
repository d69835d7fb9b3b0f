package sizing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futures_bot/internal/models"
)

func TestQuantity_BalanceSizing(t *testing.T) {
	t.Parallel()

	// 1000 * 10% * 5x = 500 USDT номинала по 50000 -> 0.01
	qty, err := Quantity(1000, 10, 5, 50000, 0.001, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.01, qty, 1e-12)
}

func TestQuantity_AlwaysStepMultiple(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		balance float64
		pct     float64
		lev     int
		price   float64
		step    float64
	}{
		{"btc-like", 937.33, 7.5, 5, 43211.17, 0.001},
		{"coarse step", 512.4, 12, 3, 0.0713, 1},
		{"fine step", 10000, 2, 10, 1.234, 0.01},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			qty, err := Quantity(tt.balance, tt.pct, tt.lev, tt.price, tt.step, 5)
			require.NoError(t, err)
			steps := qty / tt.step
			assert.InDelta(t, math.Round(steps), steps, 1e-6)
		})
	}
}

func TestQuantity_MinNotionalFloor(t *testing.T) {
	t.Parallel()

	// 10 * 1% * 1x = 0.1 USDT < minNotional 5 -> размер от 5 USDT
	qty, err := Quantity(10, 1, 1, 2.0, 0.1, 5)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, qty, 1e-12)
	assert.GreaterOrEqual(t, qty*2.0, 5.0)
}

func TestQuantity_UnknownRules(t *testing.T) {
	t.Parallel()

	_, err := Quantity(1000, 10, 5, 50000, 0, 5)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Quantity(1000, 10, 5, 50000, 0.001, 0)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestProtectivePrices_Long(t *testing.T) {
	t.Parallel()

	tp, sl, err := ProtectivePrices(100, 5, 2, models.SideLong, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 105.00, tp, 1e-9)
	assert.InDelta(t, 98.00, sl, 1e-9)
	assert.Greater(t, tp, sl)
}

func TestProtectivePrices_Short(t *testing.T) {
	t.Parallel()

	tp, sl, err := ProtectivePrices(100, 5, 2, models.SideShort, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 95.00, tp, 1e-9)
	assert.InDelta(t, 102.00, sl, 1e-9)
	assert.Less(t, tp, sl)
}

func TestProtectivePrices_InvalidSide(t *testing.T) {
	t.Parallel()

	_, _, err := ProtectivePrices(100, 5, 2, models.SideNone, 0.01)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestProtectivePrices_TickQuantization(t *testing.T) {
	t.Parallel()

	tp, sl, err := ProtectivePrices(123.456, 5, 2, models.SideLong, 0.05)
	require.NoError(t, err)
	for _, px := range []float64{tp, sl} {
		steps := px / 0.05
		assert.InDelta(t, math.Round(steps), steps, 1e-6)
	}
}
