package log

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/wecare-inventory/internal/config"
)

func TestNewSlogLogger(t *testing.T) {
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil))) })

	t.Run("JSON to file honours level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wecare.log")

		logger, closer, err := NewSlogLogger(config.Log{Level: "warn", Format: "json", File: path})
		require.NoError(t, err)
		logger.Info("hidden")
		logger.Warn("shown", slog.String("txn_id", "abc"))
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "hidden")
		assert.Contains(t, string(data), `"msg":"shown"`)
		assert.Contains(t, string(data), `"txn_id":"abc"`)
	})

	t.Run("Text format to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "wecare.log")

		logger, closer, err := NewSlogLogger(config.Log{Level: "debug", Format: "text", File: path})
		require.NoError(t, err)
		logger.Debug("details")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "details")
	})

	t.Run("Bad level", func(t *testing.T) {
		_, _, err := NewSlogLogger(config.Log{Level: "loud", Format: "text"})
		assert.Error(t, err)
	})
}
