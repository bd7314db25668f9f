package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/wecare-inventory/internal/config"
	"github.com/rogerio-castellano/wecare-inventory/internal/models"
	"github.com/rogerio-castellano/wecare-inventory/internal/repo"
)

func TestOpenProductStore(t *testing.T) {
	ctx := context.Background()

	t.Run("File backend", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "products.txt")

		store, err := openProductStore(config.Inventory{Backend: config.BackendFile, Path: path})
		require.NoError(t, err)
		defer store.Close()

		assert.IsType(t, &repo.FileProductRepository{}, store.ProductRepository)
		assert.Equal(t, path, store.source)
	})

	t.Run("SQLite backend is migrated and usable", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "wecare.db")

		store, err := openProductStore(config.Inventory{Backend: config.BackendSQLite, DSN: dsn})
		require.NoError(t, err)
		defer store.Close()

		inv := models.NewInventory()
		inv.Add(models.Product{Name: "A", Brand: "B", Quantity: 5, CostPrice: 100, Origin: "X"})
		require.NoError(t, store.Save(ctx, inv))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, loaded.Len())
	})

	t.Run("Unknown backend", func(t *testing.T) {
		_, err := openProductStore(config.Inventory{Backend: "mongo"})
		assert.Error(t, err)
	})
}
