package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"futures_bot/internal/models"
)

func TestFloorToStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		qty  float64
		step float64
		want float64
	}{
		{"exact multiple", 0.01, 0.001, 0.01},
		{"truncates down", 0.0109, 0.001, 0.01},
		{"no rounding up", 0.0199, 0.001, 0.019},
		{"zero step passthrough", 1.2345, 0, 1.2345},
		{"integer step", 17.9, 1, 17},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, FloorToStep(tt.qty, tt.step), 1e-12)
		})
	}
}

func TestFloorToTick(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 105.00, FloorToTick(105.004, 0.01), 1e-12)
	assert.InDelta(t, 98.00, FloorToTick(98.0, 0.01), 1e-12)
	assert.InDelta(t, 12.3, FloorToTick(12.34, 0.1), 1e-12)
}

func TestOrderSides(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "BUY", EntrySide(models.SideLong))
	assert.Equal(t, "SELL", EntrySide(models.SideShort))
	assert.Equal(t, "SELL", ExitSide(models.SideLong))
	assert.Equal(t, "BUY", ExitSide(models.SideShort))
}
