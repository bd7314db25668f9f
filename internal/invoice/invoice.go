package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/rogerio-castellano/wecare-inventory/internal/models"
)

// Kind identifies the transaction an invoice records.
type Kind string

const (
	KindSales   Kind = "SALES"
	KindRestock Kind = "RESTOCK"
)

// DateLayout is the timestamp format printed in the invoice header.
const DateLayout = "2006-01-02 15:04:05"

var separator = strings.Repeat("-", 50)

// Party is the customer or supplier named on an invoice.
type Party struct {
	Name  string
	Phone string
}

// Invoice is the composed text of one completed transaction.
type Invoice struct {
	Kind  Kind
	Party Party
	Lines []string
	Total int
}

// NewSale composes a sales invoice. Free units appear in the quantity but are not charged.
func NewSale(shop string, customer Party, at time.Time, cart []models.CartLine) Invoice {
	lines := []string{
		fmt.Sprintf("--- %s Sales Invoice ---", shop),
		"Customer: " + customer.Name,
		"Phone: " + customer.Phone,
		"Date: " + at.Format(DateLayout),
		separator,
	}

	total := 0
	for _, item := range cart {
		lineTotal := item.LineTotal()
		total += lineTotal
		lines = append(lines, fmt.Sprintf("%s (%s) - Qty: %d (Paid: %d) X %d = %d",
			item.Name, item.Brand, item.TotalQty, item.PaidQty, item.UnitPrice, lineTotal))
	}

	lines = append(lines,
		separator,
		fmt.Sprintf("Grand Total: Nrs %d", total),
		separator,
		"Thank you!",
	)
	return Invoice{Kind: KindSales, Party: customer, Lines: lines, Total: total}
}

// NewRestock composes a restock invoice priced at the new cost of each line.
func NewRestock(shop string, supplier Party, at time.Time, items []models.RestockLine) Invoice {
	lines := []string{
		fmt.Sprintf("--- %s Restock Invoice ---", shop),
		"Supplier: " + supplier.Name,
		"Phone: " + supplier.Phone,
		"Date: " + at.Format(DateLayout),
		separator,
	}

	total := 0
	for _, item := range items {
		lineTotal := item.LineTotal()
		total += lineTotal
		lines = append(lines, fmt.Sprintf("%s (%s) - Qty: %d X %d = %d",
			item.Name, item.Brand, item.Qty, item.CostPrice, lineTotal))
	}

	lines = append(lines,
		separator,
		fmt.Sprintf("Total Restock Cost: Nrs %d", total),
		separator,
	)
	return Invoice{Kind: KindRestock, Party: supplier, Lines: lines, Total: total}
}

var unsafeNameChars = strings.NewReplacer("/", "-", `\`, "-")

// GenerateName builds `{kind}_{party}_{Y}-{M}-{D}_{h}-{m}.txt`. Two invoices of the same
// kind and party within one minute get the same name.
func GenerateName(kind Kind, party string, now time.Time) string {
	return fmt.Sprintf("%s_%s_%d-%d-%d_%d-%d.txt",
		kind, unsafeNameChars.Replace(party),
		now.Year(), int(now.Month()), now.Day(), now.Hour(), now.Minute())
}
