package models

type Position struct {
	Symbol   string
	Side     Side    // LONG / SHORT
	Qty      float64 // всегда > 0, знак убран при маппинге
	Entry    float64
	Leverage int
}

// ROIPct — плечевой ROI позиции при текущей цене, в процентах.
// Для шорта знак инвертирован.
func (p Position) ROIPct(price float64) float64 {
	if p.Entry <= 0 {
		return 0
	}
	roi := (price - p.Entry) / p.Entry * 100 * float64(p.Leverage)
	if p.Side == SideShort {
		roi = -roi
	}
	return roi
}
