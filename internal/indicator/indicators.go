package indicator

import (
	"math"

	"futures_bot/internal/models"
)

const (
	bandPeriod = 14
	bandWidth  = 1.0
	rsiPeriod  = 14
	emaPeriod  = 4
	adoscFast  = 3
	adoscSlow  = 10
)

// Decorate прикрепляет индикаторные колонки к свечам. Чистая функция:
// одинаковый вход — одинаковый выход. До прогрева периода в колонках NaN,
// сравнения с NaN в стратегии дают false, сигнала не будет.
func Decorate(symbol string, candles []models.Candle) models.PriceSeries {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}

	mid, up, low := Bands(closes, bandPeriod, bandWidth)

	return models.PriceSeries{
		Symbol:     symbol,
		Candles:    candles,
		MiddleBand: mid,
		UpperBand:  up,
		LowerBand:  low,
		ADOSC:      ADOSC(candles, adoscFast, adoscSlow),
		RSI:        RSI(closes, rsiPeriod),
		EMA:        EMA(closes, emaPeriod),
	}
}

// Bands — SMA(period) и полосы на ±width стандартных отклонений
// (population stddev по окну).
func Bands(values []float64, period int, width float64) (mid, up, low []float64) {
	n := len(values)
	mid = nans(n)
	up = nans(n)
	low = nans(n)
	if period <= 0 || n < period {
		return
	}
	for i := period - 1; i < n; i++ {
		var sum float64
		for j := i - period + 1; j <= i; j++ {
			sum += values[j]
		}
		m := sum / float64(period)

		var varsum float64
		for j := i - period + 1; j <= i; j++ {
			d := values[j] - m
			varsum += d * d
		}
		sd := math.Sqrt(varsum / float64(period))

		mid[i] = m
		up[i] = m + width*sd
		low[i] = m - width*sd
	}
	return
}

// EMA с SMA-затравкой на первом полном окне.
func EMA(values []float64, period int) []float64 {
	n := len(values)
	out := nans(n)
	if period <= 0 || n < period {
		return out
	}
	var sum float64
	for i := 0; i < period; i++ {
		sum += values[i]
	}
	out[period-1] = sum / float64(period)

	k := 2.0 / float64(period+1)
	for i := period; i < n; i++ {
		out[i] = out[i-1] + k*(values[i]-out[i-1])
	}
	return out
}

// RSI по Уайлдеру: сглаживание 1/period, шкала 0..100.
func RSI(values []float64, period int) []float64 {
	n := len(values)
	out := nans(n)
	if period <= 0 || n <= period {
		return out
	}

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := values[i] - values[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < n; i++ {
		change := values[i] - values[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50
		}
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// ADOSC — осциллятор Чайкина: EMA(fast) - EMA(slow) по кумулятивной
// линии накопления/распределения.
func ADOSC(candles []models.Candle, fast, slow int) []float64 {
	n := len(candles)
	out := nans(n)
	if n == 0 || fast <= 0 || slow <= fast {
		return out
	}

	ad := make([]float64, n)
	var cum float64
	for i, c := range candles {
		rng := c.High - c.Low
		if rng > 0 {
			mfm := ((c.Close - c.Low) - (c.High - c.Close)) / rng
			cum += mfm * c.Volume
		}
		ad[i] = cum
	}

	emaFast := EMA(ad, fast)
	emaSlow := EMA(ad, slow)
	for i := 0; i < n; i++ {
		out[i] = emaFast[i] - emaSlow[i]
	}
	return out
}

func nans(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
