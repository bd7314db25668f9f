package models

// Inventory is the ordered product table held in memory for a whole session.
// Ids run 1..Len() in insertion order.
type Inventory struct {
	products []*Product
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{products: []*Product{}}
}

// Add appends a product, assigns it the next positional id and returns that id.
func (inv *Inventory) Add(p Product) int {
	p.ID = len(inv.products) + 1
	inv.products = append(inv.products, &p)
	return p.ID
}

// Get returns the product with the given id. The returned pointer aliases the table entry.
func (inv *Inventory) Get(id int) (*Product, bool) {
	if id < 1 || id > len(inv.products) {
		return nil, false
	}
	return inv.products[id-1], true
}

// Has reports whether id belongs to a product in the table.
func (inv *Inventory) Has(id int) bool {
	_, ok := inv.Get(id)
	return ok
}

// All returns the products in id order.
func (inv *Inventory) All() []*Product {
	return inv.products
}

func (inv *Inventory) Len() int {
	return len(inv.products)
}

func (inv *Inventory) IsEmpty() bool {
	return len(inv.products) == 0
}
