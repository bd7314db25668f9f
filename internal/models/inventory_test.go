package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventory(t *testing.T) {
	inv := NewInventory()
	assert.True(t, inv.IsEmpty())

	assert.Equal(t, 1, inv.Add(Product{Name: "A", ID: 42}))
	assert.Equal(t, 2, inv.Add(Product{Name: "B"}))
	assert.Equal(t, 2, inv.Len())

	p, ok := inv.Get(1)
	require.True(t, ok)
	assert.Equal(t, 1, p.ID, "ids are positional")

	p.Quantity = 9
	again, _ := inv.Get(1)
	assert.Equal(t, 9, again.Quantity, "Get aliases the stored product")

	assert.True(t, inv.Has(2))
	assert.False(t, inv.Has(0))
	assert.False(t, inv.Has(3))

	names := []string{}
	for _, p := range inv.All() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"A", "B"}, names)
}

func TestLineTotals(t *testing.T) {
	assert.Equal(t, 1000, Product{CostPrice: 500}.SellingPrice(2))

	sale := CartLine{PaidQty: 3, TotalQty: 4, UnitPrice: 1000}
	assert.Equal(t, 1, sale.Free())
	assert.Equal(t, 3000, sale.LineTotal())

	assert.Equal(t, 4800, RestockLine{Qty: 10, CostPrice: 480}.LineTotal())
}
