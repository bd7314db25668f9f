package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rogerio-castellano/wecare-inventory/internal/console"
	"github.com/rogerio-castellano/wecare-inventory/internal/display"
	"github.com/rogerio-castellano/wecare-inventory/internal/models"
)

// Workflows are the transactions offered by the menu.
type Workflows interface {
	Sell(ctx context.Context) error
	Restock(ctx context.Context) error
}

const (
	choiceShowStock = iota + 1
	choiceSell
	choiceRestock
	choiceExit
)

// Controller owns the menu loop for one operator session.
type Controller struct {
	inv       *models.Inventory
	workflows Workflows
	prompt    *console.Prompter
	out       io.Writer
}

// NewController creates the menu loop for inv, reading choices through prompt.
func NewController(inv *models.Inventory, workflows Workflows, prompt *console.Prompter) *Controller {
	return &Controller{
		inv:       inv,
		workflows: workflows,
		prompt:    prompt,
		out:       prompt.Out(),
	}
}

// PrintBanner prints the title shown once at startup.
func PrintBanner(w io.Writer, shop string) {
	fmt.Fprintln(w, "======================================")
	fmt.Fprintf(w, "   %s Inventory Management System \n", shop)
	fmt.Fprintln(w, "======================================")
}

// Run loops over the menu until the operator exits or the input closes. Nothing that
// happens inside a menu branch ends the session.
func (c *Controller) Run(ctx context.Context) error {
	for {
		c.menu()

		choice, err := c.prompt.ReadPositiveInteger("Enter choice (1-4):")
		if err != nil {
			return closed(err)
		}

		switch choice {
		case choiceShowStock:
			display.RenderCostTable(c.out, c.inv)
		case choiceSell:
			err = c.workflows.Sell(ctx)
		case choiceRestock:
			err = c.workflows.Restock(ctx)
		case choiceExit:
			fmt.Fprintln(c.out, "\nExiting System. Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please enter 1-4.")
		}
		if err != nil {
			return closed(err)
		}

		if err := c.prompt.WaitForEnter("\n... Press Enter to continue ..."); err != nil {
			return closed(err)
		}
	}
}

func (c *Controller) menu() {
	fmt.Fprintln(c.out, "\n+------------ MAIN MENU -------------+")
	fmt.Fprintln(c.out, "| 1. Show Stock (Cost Price)         |")
	fmt.Fprintln(c.out, "| 2. Sell Products                   |")
	fmt.Fprintln(c.out, "| 3. Restock Products                |")
	fmt.Fprintln(c.out, "| 4. Exit                            |")
	fmt.Fprintln(c.out, "+------------------------------------+")
}

// closed treats the end of input as a normal exit.
func closed(err error) error {
	if errors.Is(err, console.ErrInputClosed) {
		return nil
	}
	return err
}
