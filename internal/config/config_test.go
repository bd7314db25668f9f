package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults without file or env", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "WeCare", cfg.Shop.Name)
		assert.Equal(t, BackendFile, cfg.Inventory.Backend)
		assert.Equal(t, "products.txt", cfg.Inventory.Path)
		assert.Equal(t, ".", cfg.Invoice.Dir)
		assert.Empty(t, cfg.Invoice.RedisAddr)
		assert.Equal(t, 2, cfg.Pricing.Markup)
		assert.Equal(t, 3, cfg.Pricing.FreeEvery)
		assert.Equal(t, 999, cfg.Restock.MaxQuantity)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
	})

	t.Run("Config file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		yaml := "shop:\n  name: Corner\ninventory:\n  path: stock.txt\nrestock:\n  max_quantity: 50\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "wecare.yaml"), []byte(yaml), 0o644))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "Corner", cfg.Shop.Name)
		assert.Equal(t, "stock.txt", cfg.Inventory.Path)
		assert.Equal(t, 50, cfg.Restock.MaxQuantity)
		assert.Equal(t, 2, cfg.Pricing.Markup)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		t.Setenv("WECARE_INVENTORY_PATH", "env-products.txt")
		t.Setenv("WECARE_PRICING_MARKUP", "3")

		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, "env-products.txt", cfg.Inventory.Path)
		assert.Equal(t, 3, cfg.Pricing.Markup)
	})

	t.Run("Unknown backend is rejected", func(t *testing.T) {
		t.Setenv("WECARE_INVENTORY_BACKEND", "mongo")

		_, err := Load(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "inventory.backend")
	})

	t.Run("SQL backend requires a DSN", func(t *testing.T) {
		t.Setenv("WECARE_INVENTORY_BACKEND", "sqlite")

		_, err := Load(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "inventory.dsn")
	})

	t.Run("Non positive markup is rejected", func(t *testing.T) {
		t.Setenv("WECARE_PRICING_MARKUP", "0")

		_, err := Load(t.TempDir())
		assert.Error(t, err)
	})
}
