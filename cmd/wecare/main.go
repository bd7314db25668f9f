// Command wecare is the terminal inventory tracker: show stock, sell with the
// buy-3-get-1-free promotion, and restock, writing an invoice for every completed
// transaction.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/rogerio-castellano/wecare-inventory/internal/config"
	"github.com/rogerio-castellano/wecare-inventory/internal/console"
	"github.com/rogerio-castellano/wecare-inventory/internal/invoice"
	"github.com/rogerio-castellano/wecare-inventory/internal/log"
	"github.com/rogerio-castellano/wecare-inventory/internal/redissvc"
	"github.com/rogerio-castellano/wecare-inventory/internal/session"
	"github.com/rogerio-castellano/wecare-inventory/internal/transaction"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger, logCloser, err := log.NewSlogLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}
	defer logCloser.Close()

	store, err := openProductStore(cfg.Inventory)
	if err != nil {
		return err
	}
	defer store.Close()

	prompt := console.NewPrompter(os.Stdin, os.Stdout)
	out := prompt.Out()

	session.PrintBanner(out, cfg.Shop.Name)

	inv, err := store.Load(ctx)
	if err != nil {
		fmt.Fprintf(out, "An error occurred reading the inventory '%s': %v\n", store.source, err)
		logger.WarnContext(ctx, "inventory loaded partially",
			slog.String("source", store.source), slog.Int("products", inv.Len()), slog.Any("error", err))
	}

	var archive invoice.Archive
	if cfg.Invoice.RedisAddr != "" {
		svc, err := redissvc.Connect(ctx, cfg.Invoice.RedisAddr)
		if err != nil {
			logger.WarnContext(ctx, "invoice archive disabled", slog.Any("error", err))
		} else {
			defer svc.Close()
			archive = invoice.NewRedisArchive(svc.Rdb())
		}
	}

	engine := transaction.NewEngine(transaction.Deps{
		Inventory: inv,
		Products:  store,
		Invoices:  invoice.NewFileWriter(cfg.Invoice.Dir, logger),
		Archive:   archive,
		Prompter:  prompt,
		Rules: transaction.Rules{
			Markup:        cfg.Pricing.Markup,
			FreeEvery:     cfg.Pricing.FreeEvery,
			MaxRestockQty: cfg.Restock.MaxQuantity,
		},
		ShopName: cfg.Shop.Name,
		Logger:   logger,
	})

	return session.NewController(inv, engine, prompt).Run(ctx)
}
