package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/wecare-inventory/internal/display"
	"github.com/rogerio-castellano/wecare-inventory/internal/invoice"
)

// Restock runs one restock transaction. It returns only console.ErrInputClosed.
func (e *Engine) Restock(ctx context.Context) error {
	if e.inv.IsEmpty() {
		fmt.Fprintln(e.out, "\nInventory is empty. add products to the file to restock it.")
		return nil
	}

	logger := e.txnLogger(invoice.KindRestock)
	logger.DebugContext(ctx, "restock started")

	supplier, err := e.readParty("Enter supplier name for invoice: ", "Enter supplier phone number: ")
	if err != nil {
		return err
	}

	order := NewRestockOrder(e.rules)
	for {
		display.RenderCostTable(e.out, e.inv)

		id, err := e.prompt.ReadValidProductID("Enter Product ID to restock:", e.inv)
		if err != nil {
			return err
		}
		p, _ := e.inv.Get(id)
		fmt.Fprintf(e.out, "\nRestocking: %s, Current Stock: %d, Current Cost: %d, Origin: %s\n",
			p.Name, p.Quantity, p.CostPrice, p.Origin)

		qty, err := e.prompt.ReadPositiveInteger("Enter quantity to add:")
		if err != nil {
			return err
		}

		if err := order.CheckQuantity(qty); errors.Is(err, ErrQuantityCap) {
			fmt.Fprintf(e.out, "Cannot Add Quantity above %d\n", e.rules.MaxRestockQty)
		} else {
			cost, err := e.prompt.ReadPositiveInteger("Enter new cost price per item for this batch:")
			if err != nil {
				return err
			}

			if line, err := order.Add(e.inv, id, qty, cost); err != nil {
				fmt.Fprintf(e.out, "Error: %v\n", err)
			} else {
				fmt.Fprintf(e.out, "%d %s marked for restock.\n", line.Qty, line.Name)
			}
		}

		more, err := e.prompt.ReadYesNo("Add another product to this restock order?")
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	if order.IsEmpty() {
		fmt.Fprintln(e.out, "\nNothing selected to restock. Restock operation cancelled.")
		logger.DebugContext(ctx, "restock cancelled")
		return nil
	}

	at := e.now()
	e.checkout(ctx, logger, invoice.NewRestock(e.shop, supplier, at, order.Lines()), at)
	return nil
}
