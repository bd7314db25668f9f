package display

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rogerio-castellano/wecare-inventory/internal/models"
)

const tableWidth = 90

var (
	heavyRule = strings.Repeat("=", tableWidth)
	lightRule = strings.Repeat("-", tableWidth)
)

// RenderCostTable prints the inventory with its stored cost prices.
func RenderCostTable(w io.Writer, inv *models.Inventory) {
	render(w, "Raw Inventory Data (Cost Price)", "Cost Price", inv, func(p *models.Product) int {
		return p.CostPrice
	})
}

// RenderMarkupTable prints the inventory with selling prices (cost × markup).
func RenderMarkupTable(w io.Writer, inv *models.Inventory, markup int) {
	render(w, "Available Products (Selling Price)", "Selling Price", inv, func(p *models.Product) int {
		return p.SellingPrice(markup)
	})
}

func render(w io.Writer, title, priceHeader string, inv *models.Inventory, price func(*models.Product) int) {
	// Header and rows share one column block so they align; the rule goes in afterwards.
	var body bytes.Buffer
	tw := tabwriter.NewWriter(&body, 8, 8, 1, '\t', 0)
	fmt.Fprintf(tw, "ID\tName\tBrand\tQty\t%s\tOrigin\n", priceHeader)
	for _, p := range inv.All() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%s\n", p.ID, p.Name, p.Brand, p.Quantity, price(p), p.Origin)
	}
	tw.Flush()
	header, rows, _ := strings.Cut(body.String(), "\n")

	fmt.Fprintln(w)
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w, centered(title))
	fmt.Fprintln(w, lightRule)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, lightRule)
	fmt.Fprint(w, rows)
	fmt.Fprintln(w, heavyRule)
}

// centered pads title with dashes to the table width.
func centered(title string) string {
	title = " " + title + " "
	pad := tableWidth - len(title)
	if pad <= 0 {
		return title
	}
	left := pad / 2
	return strings.Repeat("-", left) + title + strings.Repeat("-", pad-left)
}
