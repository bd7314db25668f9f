package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/wecare-inventory/internal/display"
	"github.com/rogerio-castellano/wecare-inventory/internal/invoice"
)

// Sell runs one sell transaction. It returns only console.ErrInputClosed.
func (e *Engine) Sell(ctx context.Context) error {
	if e.inv.IsEmpty() {
		fmt.Fprintln(e.out, "\nInventory is empty. Cannot sell any products at the moment.")
		return nil
	}

	logger := e.txnLogger(invoice.KindSales)
	logger.DebugContext(ctx, "sale started")

	customer, err := e.readParty("Enter customer name for invoice: ", "Enter customer phone number: ")
	if err != nil {
		return err
	}

	cart := NewCart(e.rules)
	for {
		display.RenderMarkupTable(e.out, e.inv, e.rules.Markup)

		id, err := e.prompt.ReadValidProductID("Enter Product ID to sell:", e.inv)
		if err != nil {
			return err
		}
		p, _ := e.inv.Get(id)
		fmt.Fprintf(e.out, "\nSelected: %s, Stock: %d, Selling Price: %d, Origin: %s\n",
			p.Name, p.Quantity, p.SellingPrice(e.rules.Markup), p.Origin)

		if p.Quantity == 0 {
			fmt.Fprintln(e.out, "This item is currently out of stock.")
		} else {
			paid, err := e.prompt.ReadPositiveInteger("Enter quantity to buy:")
			if err != nil {
				return err
			}

			line, err := cart.Add(e.inv, id, paid)
			switch {
			case errors.Is(err, ErrInsufficientStock):
				fmt.Fprintf(e.out, "Error: Not enough stock for %d + %d free.\n", paid, e.rules.FreeItems(paid))
			case err != nil:
				fmt.Fprintf(e.out, "Error: %v\n", err)
			default:
				fmt.Fprintf(e.out, "%d(+%d free) %s added to cart.\n", line.PaidQty, line.Free(), line.Name)
			}
		}

		more, err := e.prompt.ReadYesNo("Add another product to the cart?")
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	if cart.IsEmpty() {
		fmt.Fprintln(e.out, "\nCart is empty. Sale cancelled.")
		logger.DebugContext(ctx, "sale cancelled")
		return nil
	}

	at := e.now()
	e.checkout(ctx, logger, invoice.NewSale(e.shop, customer, at, cart.Lines()), at)
	return nil
}
