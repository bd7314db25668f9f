package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rogerio-castellano/wecare-inventory/internal/config"
	"github.com/rogerio-castellano/wecare-inventory/internal/db"
	"github.com/rogerio-castellano/wecare-inventory/internal/repo"
)

// productStore is the configured product repository plus whatever it holds open.
type productStore struct {
	repo.ProductRepository
	source string
	db     *sqlx.DB
}

func (s *productStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func openProductStore(cfg config.Inventory) (*productStore, error) {
	var driver string
	switch cfg.Backend {
	case config.BackendFile:
		return &productStore{
			ProductRepository: repo.NewFileProductRepository(cfg.Path),
			source:            cfg.Path,
		}, nil
	case config.BackendSQLite:
		driver = db.DriverSQLite
	case config.BackendPostgres:
		driver = db.DriverPostgres
	default:
		return nil, fmt.Errorf("unknown inventory backend %q", cfg.Backend)
	}

	database, err := db.Connect(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	if err := db.Migrate(database); err != nil {
		database.Close()
		return nil, err
	}

	return &productStore{
		ProductRepository: repo.NewSQLProductRepository(database),
		source:            cfg.Backend,
		db:                database,
	}, nil
}
