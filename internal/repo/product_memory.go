package repo

import (
	"context"

	"github.com/rogerio-castellano/wecare-inventory/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	products []models.Product
	saves    int

	// SaveErr, when set, is returned by every Save call.
	SaveErr error
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository(products ...models.Product) *InMemoryProductRepository {
	r := &InMemoryProductRepository{products: []models.Product{}}
	for _, p := range products {
		r.Create(p)
	}
	return r
}

// Create appends a product and assigns it the next positional id.
func (r *InMemoryProductRepository) Create(product models.Product) models.Product {
	product.ID = len(r.products) + 1
	r.products = append(r.products, product)
	return product
}

// Load returns a fresh inventory built from the stored products.
func (r *InMemoryProductRepository) Load(_ context.Context) (*models.Inventory, error) {
	inv := models.NewInventory()
	for _, p := range r.products {
		inv.Add(p)
	}
	return inv, nil
}

// Save snapshots the inventory, replacing the stored products.
func (r *InMemoryProductRepository) Save(_ context.Context, inv *models.Inventory) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.saves++
	r.products = r.products[:0]
	for _, p := range inv.All() {
		r.products = append(r.products, *p)
	}
	return nil
}

// GetAll retrieves all stored products.
func (r *InMemoryProductRepository) GetAll() []models.Product {
	return r.products
}

// SaveCount reports how many successful saves have happened.
func (r *InMemoryProductRepository) SaveCount() int {
	return r.saves
}
