package models

// Instrument — правила квантования с биржи. Не кэшируется между циклами.
type Instrument struct {
	Symbol      string
	StepSize    float64 // шаг количества (LOT_SIZE)
	TickSize    float64 // шаг цены (PRICE_FILTER)
	MinNotional float64 // минимальный объём ордера в quote-валюте
}
