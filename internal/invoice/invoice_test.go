package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rogerio-castellano/wecare-inventory/internal/models"
)

var at = time.Date(2025, time.March, 7, 9, 5, 30, 0, time.Local)

func TestGenerateName(t *testing.T) {
	t.Run("Fields are not zero padded", func(t *testing.T) {
		assert.Equal(t, "SALES_Sita_2025-3-7_9-5.txt", GenerateName(KindSales, "Sita", at))
	})

	t.Run("Same minute gives the same name", func(t *testing.T) {
		later := at.Add(20 * time.Second)
		assert.Equal(t, GenerateName(KindRestock, "Acme", at), GenerateName(KindRestock, "Acme", later))
	})

	t.Run("Path separators are replaced", func(t *testing.T) {
		assert.Equal(t, "RESTOCK_A-B-C_2025-3-7_9-5.txt", GenerateName(KindRestock, `A/B\C`, at))
	})
}

func TestNewSale(t *testing.T) {
	cart := []models.CartLine{
		{ProductID: 1, Name: "Serum", Brand: "Garnier", PaidQty: 3, TotalQty: 4, UnitPrice: 1000},
		{ProductID: 2, Name: "Soap", Brand: "Dove", PaidQty: 1, TotalQty: 1, UnitPrice: 160},
	}

	inv := NewSale("WeCare", Party{Name: "Sita", Phone: "9800000000"}, at, cart)

	assert.Equal(t, KindSales, inv.Kind)
	assert.Equal(t, 3160, inv.Total)
	assert.Equal(t, []string{
		"--- WeCare Sales Invoice ---",
		"Customer: Sita",
		"Phone: 9800000000",
		"Date: 2025-03-07 09:05:30",
		"--------------------------------------------------",
		"Serum (Garnier) - Qty: 4 (Paid: 3) X 1000 = 3000",
		"Soap (Dove) - Qty: 1 (Paid: 1) X 160 = 160",
		"--------------------------------------------------",
		"Grand Total: Nrs 3160",
		"--------------------------------------------------",
		"Thank you!",
	}, inv.Lines)
}

func TestNewRestock(t *testing.T) {
	items := []models.RestockLine{
		{ProductID: 1, Name: "Serum", Brand: "Garnier", Qty: 10, CostPrice: 480, Origin: "France"},
	}

	inv := NewRestock("WeCare", Party{Name: "Acme", Phone: "01-444"}, at, items)

	assert.Equal(t, KindRestock, inv.Kind)
	assert.Equal(t, 4800, inv.Total)
	assert.Equal(t, []string{
		"--- WeCare Restock Invoice ---",
		"Supplier: Acme",
		"Phone: 01-444",
		"Date: 2025-03-07 09:05:30",
		"--------------------------------------------------",
		"Serum (Garnier) - Qty: 10 X 480 = 4800",
		"--------------------------------------------------",
		"Total Restock Cost: Nrs 4800",
		"--------------------------------------------------",
	}, inv.Lines)
}
