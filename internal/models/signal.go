package models

type Side string

const (
	SideNone  Side = ""
	SideLong  Side = "LONG"
	SideShort Side = "SHORT"
)

// Signal — результат одного прохода стратегии по серии. Живёт один цикл.
type Signal struct {
	Symbol string
	Side   Side
	Price  float64 // close последнего бара
}

func (s Signal) Active() bool { return s.Side == SideLong || s.Side == SideShort }
