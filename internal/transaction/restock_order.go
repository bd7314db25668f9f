package transaction

import (
	"fmt"

	"github.com/rogerio-castellano/wecare-inventory/internal/models"
)

// RestockOrder accumulates the lines of one restock transaction.
type RestockOrder struct {
	rules Rules
	lines []models.RestockLine
	total int
}

// NewRestockOrder creates an empty restock order limited by rules.
func NewRestockOrder(rules Rules) *RestockOrder {
	return &RestockOrder{rules: rules}
}

// CheckQuantity rejects quantities outside 1..MaxRestockQty. There is no partial accept.
func (o *RestockOrder) CheckQuantity(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > o.rules.MaxRestockQty {
		return fmt.Errorf("%w: %d > %d", ErrQuantityCap, qty, o.rules.MaxRestockQty)
	}
	return nil
}

// Add records qty units of product id at newCost. On success the stock grows and the cost
// price is replaced in inv immediately; on any error nothing changes.
func (o *RestockOrder) Add(inv *models.Inventory, id, qty, newCost int) (models.RestockLine, error) {
	p, ok := inv.Get(id)
	if !ok {
		return models.RestockLine{}, fmt.Errorf("%w: id %d", ErrUnknownProduct, id)
	}
	if err := o.CheckQuantity(qty); err != nil {
		return models.RestockLine{}, err
	}
	if newCost <= 0 {
		return models.RestockLine{}, ErrInvalidPrice
	}

	// The new cost must still have a representable selling price.
	if !mulFits(newCost, o.rules.Markup) {
		return models.RestockLine{}, fmt.Errorf("%w: cost price %d", ErrAmountTooLarge, newCost)
	}
	if !mulFits(qty, newCost) || !addFits(o.total, qty*newCost) {
		return models.RestockLine{}, fmt.Errorf("%w: restock total", ErrAmountTooLarge)
	}
	if !addFits(p.Quantity, qty) {
		return models.RestockLine{}, fmt.Errorf("%w: stock of %s", ErrAmountTooLarge, p.Name)
	}

	line := models.RestockLine{
		ProductID: p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Qty:       qty,
		CostPrice: newCost,
		Origin:    p.Origin,
	}
	o.lines = append(o.lines, line)
	o.total += line.LineTotal()
	p.Quantity += qty
	p.CostPrice = newCost
	return line, nil
}

// Lines returns the accepted lines in the order they were added.
func (o *RestockOrder) Lines() []models.RestockLine {
	return o.lines
}

func (o *RestockOrder) IsEmpty() bool {
	return len(o.lines) == 0
}
