package strategy

import (
	"futures_bot/internal/models"
)

// Evaluate сравнивает два последних бара декорированной серии и возвращает
// сигнал, только если все три условия переключились на одной паре баров:
// EMA пересекла середину канала, ADOSC пересёк ноль, RSI пересёк 50.
// Частичные переходы сигналом не считаются.
func Evaluate(s models.PriceSeries) models.Signal {
	n := s.Len()
	if n < 2 {
		return models.Signal{Symbol: s.Symbol, Side: models.SideNone}
	}

	prev, last := n-2, n-1
	price := s.Candles[last].Close

	long := s.EMA[prev] <= s.MiddleBand[prev] && s.EMA[last] > s.MiddleBand[last] &&
		s.ADOSC[prev] <= 0 && s.ADOSC[last] > 0 &&
		s.RSI[prev] <= 50 && s.RSI[last] > 50

	short := s.EMA[prev] >= s.MiddleBand[prev] && s.EMA[last] < s.MiddleBand[last] &&
		s.ADOSC[prev] >= 0 && s.ADOSC[last] < 0 &&
		s.RSI[prev] >= 50 && s.RSI[last] < 50

	switch {
	case long:
		return models.Signal{Symbol: s.Symbol, Side: models.SideLong, Price: price}
	case short:
		return models.Signal{Symbol: s.Symbol, Side: models.SideShort, Price: price}
	default:
		return models.Signal{Symbol: s.Symbol, Side: models.SideNone}
	}
}
