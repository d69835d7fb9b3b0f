package models

type OrderKind string

const (
	KindTakeProfit OrderKind = "TAKE_PROFIT"
	KindStopLoss   OrderKind = "STOP_LOSS"
	KindOther      OrderKind = "OTHER"
)

// Order — открытый ордер на бирже в упрощённом виде.
type Order struct {
	Symbol       string
	OrderID      int64
	Kind         OrderKind
	Side         string // BUY / SELL
	PositionSide string // LONG / SHORT / BOTH
	Qty          float64
	Trigger      float64 // stopPrice для защитных ордеров
}

func (o Order) Protective() bool {
	return o.Kind == KindTakeProfit || o.Kind == KindStopLoss
}
