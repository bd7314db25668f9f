// Package transaction implements the sell and restock workflows: collecting the party,
// accumulating lines against the in-memory inventory, and committing the invoice and the
// inventory at checkout.
package transaction

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rogerio-castellano/wecare-inventory/internal/console"
	"github.com/rogerio-castellano/wecare-inventory/internal/invoice"
	"github.com/rogerio-castellano/wecare-inventory/internal/models"
	"github.com/rogerio-castellano/wecare-inventory/internal/repo"
)

// Deps wires an Engine. Archive, Clock and Logger are optional.
type Deps struct {
	Inventory *models.Inventory
	Products  repo.ProductRepository
	Invoices  invoice.Writer
	Archive   invoice.Archive
	Prompter  *console.Prompter
	Rules     Rules
	ShopName  string
	Clock     func() time.Time
	Logger    *slog.Logger
}

// Engine runs transactions against one inventory. Stock changes are applied to the
// inventory as lines are accepted and are never rolled back.
type Engine struct {
	inv      *models.Inventory
	products repo.ProductRepository
	invoices invoice.Writer
	archive  invoice.Archive
	prompt   *console.Prompter
	out      io.Writer
	rules    Rules
	shop     string
	now      func() time.Time
	logger   *slog.Logger
}

// NewEngine creates an engine from d, defaulting the clock to time.Now and the logger to slog.Default.
func NewEngine(d Deps) *Engine {
	e := &Engine{
		inv:      d.Inventory,
		products: d.Products,
		invoices: d.Invoices,
		archive:  d.Archive,
		prompt:   d.Prompter,
		out:      d.Prompter.Out(),
		rules:    d.Rules,
		shop:     d.ShopName,
		now:      d.Clock,
		logger:   d.Logger,
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

func (e *Engine) txnLogger(kind invoice.Kind) *slog.Logger {
	return e.logger.With(slog.String("txn_id", uuid.NewString()), slog.String("kind", string(kind)))
}

func (e *Engine) readParty(namePrompt, phonePrompt string) (invoice.Party, error) {
	name, err := e.prompt.ReadLine(namePrompt)
	if err != nil {
		return invoice.Party{}, err
	}
	phone, err := e.prompt.ReadLine(phonePrompt)
	if err != nil {
		return invoice.Party{}, err
	}
	return invoice.Party{Name: name, Phone: phone}, nil
}

// checkout writes the invoice and, only if that succeeded, echoes it and saves the
// inventory. Failures are reported and the session carries on.
func (e *Engine) checkout(ctx context.Context, logger *slog.Logger, inv invoice.Invoice, at time.Time) {
	name := invoice.GenerateName(inv.Kind, inv.Party.Name, at)
	logger = logger.With(slog.String("invoice", name))

	if err := e.invoices.Write(ctx, name, inv.Lines); err != nil {
		logger.ErrorContext(ctx, "invoice write failed", slog.Any("error", err))
		fmt.Fprintf(e.out, "Error writing invoice file '%s': %v\n", name, err)
		fmt.Fprintln(e.out, "Warning: Invoice writing failed. Inventory file not updated.")
		return
	}
	fmt.Fprintln(e.out, "Invoice file generated successfully: "+name)

	if e.archive != nil {
		if err := e.archive.Store(ctx, inv.Kind, name, inv.Lines); err != nil {
			logger.WarnContext(ctx, "invoice archive failed", slog.Any("error", err))
		}
	}

	fmt.Fprintln(e.out, "\n--- Invoice Details (Printed to Terminal) ---")
	for _, line := range inv.Lines {
		fmt.Fprintln(e.out, line)
	}
	fmt.Fprintln(e.out, strings.Repeat("-", 45))

	if err := e.products.Save(ctx, e.inv); err != nil {
		logger.ErrorContext(ctx, "inventory save failed", slog.Any("error", err))
		fmt.Fprintf(e.out, "Error writing inventory: %v\n", err)
		fmt.Fprintln(e.out, "Warning: Invoice generated & displayed, but inventory file update failed!")
		return
	}

	logger.InfoContext(ctx, "transaction committed", slog.Int("total", inv.Total))
}
