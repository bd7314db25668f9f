package models

// CartLine is one accepted sell request within a single sell transaction.
type CartLine struct {
	ProductID int
	Name      string
	Brand     string
	PaidQty   int
	TotalQty  int // paid plus free units removed from stock
	UnitPrice int
}

// Free returns the number of promotional units on the line.
func (l CartLine) Free() int {
	return l.TotalQty - l.PaidQty
}

// LineTotal returns the amount charged; free units are not charged.
func (l CartLine) LineTotal() int {
	return l.PaidQty * l.UnitPrice
}

// RestockLine is one accepted restock request within a single restock transaction.
type RestockLine struct {
	ProductID int
	Name      string
	Brand     string
	Qty       int
	CostPrice int
	Origin    string
}

func (l RestockLine) LineTotal() int {
	return l.Qty * l.CostPrice
}
