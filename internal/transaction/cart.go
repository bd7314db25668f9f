package transaction

import (
	"fmt"

	"github.com/rogerio-castellano/wecare-inventory/internal/models"
)

// Cart accumulates the lines of one sell transaction.
type Cart struct {
	rules Rules
	lines []models.CartLine
	total int
}

// NewCart creates an empty cart priced with rules.
func NewCart(rules Rules) *Cart {
	return &Cart{rules: rules}
}

// Add reserves paid units of product id plus their free units. On success the stock is
// decremented in inv immediately; on any error neither inv nor the cart changes.
func (c *Cart) Add(inv *models.Inventory, id, paid int) (models.CartLine, error) {
	p, ok := inv.Get(id)
	if !ok {
		return models.CartLine{}, fmt.Errorf("%w: id %d", ErrUnknownProduct, id)
	}
	if paid <= 0 {
		return models.CartLine{}, ErrInvalidQuantity
	}
	if p.Quantity == 0 {
		return models.CartLine{}, fmt.Errorf("%w: %s", ErrOutOfStock, p.Name)
	}

	free := c.rules.FreeItems(paid)
	if paid > p.Quantity-free {
		return models.CartLine{}, fmt.Errorf("%w: %d + %d free requested, %d in stock", ErrInsufficientStock, paid, free, p.Quantity)
	}

	if !mulFits(p.CostPrice, c.rules.Markup) {
		return models.CartLine{}, fmt.Errorf("%w: selling price of %s", ErrAmountTooLarge, p.Name)
	}
	unitPrice := p.SellingPrice(c.rules.Markup)
	if !mulFits(paid, unitPrice) || !addFits(c.total, paid*unitPrice) {
		return models.CartLine{}, fmt.Errorf("%w: cart total", ErrAmountTooLarge)
	}

	line := models.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		PaidQty:   paid,
		TotalQty:  paid + free,
		UnitPrice: unitPrice,
	}
	c.lines = append(c.lines, line)
	c.total += line.LineTotal()
	p.Quantity -= line.TotalQty
	return line, nil
}

// Lines returns the accepted lines in the order they were added.
func (c *Cart) Lines() []models.CartLine {
	return c.lines
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
