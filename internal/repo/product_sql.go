package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rogerio-castellano/wecare-inventory/internal/models"
	"github.com/rogerio-castellano/wecare-inventory/internal/validate"
)

const queryTimeout = 3 * time.Second

// SQLProductRepository keeps the product table in a SQL database (SQLite or Postgres).
// The position column carries the record order, so ids stay positional as with the flat file.
type SQLProductRepository struct {
	db        *sqlx.DB
	validator *validate.Validator
}

type productRow struct {
	Position  int    `db:"position"`
	Name      string `db:"name"`
	Brand     string `db:"brand"`
	Quantity  int    `db:"quantity"`
	CostPrice int    `db:"cost_price"`
	Origin    string `db:"origin"`
}

// NewSQLProductRepository creates a repository over a migrated products table.
func NewSQLProductRepository(db *sqlx.DB) *SQLProductRepository {
	return &SQLProductRepository{db: db, validator: validate.New()}
}

func (r *SQLProductRepository) Load(ctx context.Context) (*models.Inventory, error) {
	inv := models.NewInventory()

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var rows []productRow
	query := `SELECT position, name, brand, quantity, cost_price, origin FROM products ORDER BY position`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return inv, fmt.Errorf("failed to query products: %w", err)
	}

	var errs []error
	for _, row := range rows {
		p := models.Product{
			Name:      row.Name,
			Brand:     row.Brand,
			Quantity:  row.Quantity,
			CostPrice: row.CostPrice,
			Origin:    row.Origin,
		}
		if err := r.validator.Struct(p); err != nil {
			errs = append(errs, fmt.Errorf("position %d: %w: %v", row.Position, ErrMalformedRecord, err))
			continue
		}
		inv.Add(p)
	}
	return inv, errors.Join(errs...)
}

// Save replaces every stored row with the current table inside one transaction.
func (r *SQLProductRepository) Save(ctx context.Context, inv *models.Inventory) (err error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, rollback(tx))
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, tx.Rebind(
		`INSERT INTO products (position, name, brand, quantity, cost_price, origin) VALUES (?, ?, ?, ?, ?, ?)`,
	))
	if err != nil {
		return fmt.Errorf("failed to prepare product insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range inv.All() {
		if _, err = stmt.ExecContext(ctx, p.ID, p.Name, p.Brand, p.Quantity, p.CostPrice, p.Origin); err != nil {
			return fmt.Errorf("failed to insert product %d: %w", p.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// rollback aborts tx. A transaction already ended by a failed commit is not an error.
func rollback(tx *sqlx.Tx) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}
