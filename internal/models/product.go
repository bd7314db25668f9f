package models

// Product represents a product entity in the shop inventory.
// ID is positional: it is assigned at load time from the record order and is never persisted.
type Product struct {
	ID        int    `json:"id" db:"-"`
	Name      string `json:"name" db:"name" validate:"required"`
	Brand     string `json:"brand" db:"brand"`
	Quantity  int    `json:"quantity" db:"quantity" validate:"gte=0"`
	CostPrice int    `json:"cost_price" db:"cost_price" validate:"gte=0"`
	Origin    string `json:"origin" db:"origin"`
}

// SellingPrice returns the display price for the given markup factor.
func (p Product) SellingPrice(markup int) int {
	return p.CostPrice * markup
}
