package service

type exchangeInfoResponse struct {
	Symbols []symbolInfo `json:"symbols"`
}

type symbolInfo struct {
	Symbol       string         `json:"symbol"`
	Status       string         `json:"status"`
	ContractType string         `json:"contractType"`
	QuoteAsset   string         `json:"quoteAsset"`
	Filters      []symbolFilter `json:"filters"`
}

// Один struct на все типы фильтров: Binance кладёт разные поля
// в зависимости от filterType.
type symbolFilter struct {
	FilterType string `json:"filterType"`
	StepSize   string `json:"stepSize"`
	TickSize   string `json:"tickSize"`
	Notional   string `json:"notional"`
}

type balanceEntry struct {
	Asset   string `json:"asset"`
	Balance string `json:"balance"`
}

type positionRisk struct {
	Symbol       string `json:"symbol"`
	PositionAmt  string `json:"positionAmt"`
	EntryPrice   string `json:"entryPrice"`
	PositionSide string `json:"positionSide"`
	Leverage     string `json:"leverage"`
}

type openOrder struct {
	Symbol       string `json:"symbol"`
	OrderID      int64  `json:"orderId"`
	Type         string `json:"type"`
	Side         string `json:"side"`
	PositionSide string `json:"positionSide"`
	OrigQty      string `json:"origQty"`
	StopPrice    string `json:"stopPrice"`
}

type tickerPrice struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

type positionModeResponse struct {
	DualSidePosition bool `json:"dualSidePosition"`
}

type orderResponse struct {
	OrderID int64  `json:"orderId"`
	Status  string `json:"status"`
}
