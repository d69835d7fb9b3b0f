package models

import "time"

type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries — свечи одного инструмента плюс индикаторные колонки,
// выровненные по индексу бара. Заполняется indicator.Decorate и дальше
// только читается.
type PriceSeries struct {
	Symbol  string
	Candles []Candle

	// NaN до прогрева соответствующего периода.
	MiddleBand []float64 // SMA(14)
	UpperBand  []float64 // SMA + 1σ
	LowerBand  []float64 // SMA - 1σ
	ADOSC      []float64 // Chaikin A/D oscillator (EMA3 - EMA10)
	RSI        []float64 // Wilder RSI(14)
	EMA        []float64 // EMA(4)
}

func (s PriceSeries) Len() int { return len(s.Candles) }
