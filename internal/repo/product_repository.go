package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/wecare-inventory/internal/models"
)

// ProductRepository loads and persists the whole product table.
//
// Load follows a partial-success policy: the returned inventory is never nil and holds
// every record that could be read, while the error (possibly joined) describes what
// could not.
type ProductRepository interface {
	Load(ctx context.Context) (*models.Inventory, error)
	Save(ctx context.Context, inv *models.Inventory) error
}

// ErrMalformedRecord is returned for a backing record that cannot be turned into a product.
var ErrMalformedRecord = errors.New("malformed product record")
