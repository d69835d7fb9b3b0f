package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"futures_bot/internal/models"
)

// series собирает двухбаровую серию с заданными индикаторными значениями.
func series(prevEMA, lastEMA, prevMid, lastMid, prevAD, lastAD, prevRSI, lastRSI float64) models.PriceSeries {
	return models.PriceSeries{
		Symbol: "BTCUSDT",
		Candles: []models.Candle{
			{Close: 100},
			{Close: 101},
		},
		MiddleBand: []float64{prevMid, lastMid},
		UpperBand:  []float64{prevMid + 1, lastMid + 1},
		LowerBand:  []float64{prevMid - 1, lastMid - 1},
		EMA:        []float64{prevEMA, lastEMA},
		ADOSC:      []float64{prevAD, lastAD},
		RSI:        []float64{prevRSI, lastRSI},
	}
}

func TestEvaluate_TooFewBars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, models.SideNone, Evaluate(models.PriceSeries{Symbol: "BTCUSDT"}).Side)

	one := models.PriceSeries{
		Symbol:     "BTCUSDT",
		Candles:    []models.Candle{{Close: 100}},
		MiddleBand: []float64{100},
		UpperBand:  []float64{101},
		LowerBand:  []float64{99},
		EMA:        []float64{100},
		ADOSC:      []float64{0},
		RSI:        []float64{50},
	}
	assert.Equal(t, models.SideNone, Evaluate(one).Side)
}

func TestEvaluate_LongCrossover(t *testing.T) {
	t.Parallel()

	s := series(
		99, 101, // EMA: под серединой -> над
		100, 100, // middle band
		-5, 3, // ADOSC: <=0 -> >0
		45, 55, // RSI: <=50 -> >50
	)
	sig := Evaluate(s)
	assert.Equal(t, models.SideLong, sig.Side)
	assert.Equal(t, 101.0, sig.Price)
	assert.Equal(t, "BTCUSDT", sig.Symbol)
}

func TestEvaluate_ShortCrossover(t *testing.T) {
	t.Parallel()

	s := series(
		101, 99, // EMA: над серединой -> под
		100, 100,
		5, -3, // ADOSC: >=0 -> <0
		55, 45, // RSI: >=50 -> <50
	)
	assert.Equal(t, models.SideShort, Evaluate(s).Side)
}

func TestEvaluate_PartialTransitionsGiveNoSignal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    models.PriceSeries
	}{
		{"ema only", series(99, 101, 100, 100, 5, 6, 55, 56)},
		{"adosc only", series(101, 102, 100, 100, -5, 3, 55, 56)},
		{"rsi only", series(101, 102, 100, 100, 5, 6, 45, 55)},
		{"ema+adosc without rsi", series(99, 101, 100, 100, -5, 3, 55, 56)},
		{"ema+rsi without adosc", series(99, 101, 100, 100, 5, 6, 45, 55)},
		{"adosc+rsi without ema", series(101, 102, 100, 100, -5, 3, 45, 55)},
		{"already above, no cross", series(101, 102, 100, 100, 3, 4, 55, 60)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, models.SideNone, Evaluate(tt.s).Side)
		})
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	t.Parallel()

	s := series(99, 101, 100, 100, -5, 3, 45, 55)
	assert.Equal(t, Evaluate(s), Evaluate(s))
}
