package indicator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"futures_bot/internal/models"
)

func TestEMA_SeedAndWarmup(t *testing.T) {
	t.Parallel()

	values := []float64{1, 2, 3, 4, 5, 6}
	out := EMA(values, 4)

	require.Len(t, out, 6)
	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[2]))
	// затравка = SMA первых четырёх
	assert.InDelta(t, 2.5, out[3], 1e-12)
	// k = 2/5
	assert.InDelta(t, 2.5+0.4*(5-2.5), out[4], 1e-12)
}

func TestRSI_DirectionalSeries(t *testing.T) {
	t.Parallel()

	rising := make([]float64, 30)
	falling := make([]float64, 30)
	for i := range rising {
		rising[i] = 100 + float64(i)
		falling[i] = 100 - float64(i)
	}

	up := RSI(rising, 14)
	down := RSI(falling, 14)

	assert.True(t, math.IsNaN(up[13]))
	assert.InDelta(t, 100, up[len(up)-1], 1e-9)
	assert.InDelta(t, 0, down[len(down)-1], 1e-9)
}

func TestBands_FlatSeries(t *testing.T) {
	t.Parallel()

	values := make([]float64, 20)
	for i := range values {
		values[i] = 42
	}
	mid, up, low := Bands(values, 14, 1.0)

	assert.True(t, math.IsNaN(mid[12]))
	assert.InDelta(t, 42, mid[19], 1e-12)
	assert.InDelta(t, 42, up[19], 1e-12)
	assert.InDelta(t, 42, low[19], 1e-12)
}

func TestDecorate_AlignedAndDeterministic(t *testing.T) {
	t.Parallel()

	candles := make([]models.Candle, 40)
	base := time.Unix(1700000000, 0)
	for i := range candles {
		px := 100 + math.Sin(float64(i)/3)*5
		candles[i] = models.Candle{
			Time:   base.Add(time.Duration(i) * 15 * time.Minute),
			Open:   px,
			High:   px + 1,
			Low:    px - 1,
			Close:  px + 0.5,
			Volume: 1000 + float64(i),
		}
	}

	a := Decorate("BTCUSDT", candles)
	b := Decorate("BTCUSDT", candles)

	require.Equal(t, len(candles), a.Len())
	require.Len(t, a.RSI, a.Len())
	require.Len(t, a.ADOSC, a.Len())
	require.Len(t, a.MiddleBand, a.Len())
	require.Len(t, a.EMA, a.Len())

	last := a.Len() - 1
	assert.False(t, math.IsNaN(a.RSI[last]))
	assert.False(t, math.IsNaN(a.ADOSC[last]))
	assert.False(t, math.IsNaN(a.MiddleBand[last]))
	assert.False(t, math.IsNaN(a.EMA[last]))

	assert.Equal(t, a.RSI[last], b.RSI[last])
	assert.Equal(t, a.ADOSC[last], b.ADOSC[last])
}
