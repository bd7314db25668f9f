package invoice

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileWriter(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes one line per entry", func(t *testing.T) {
		dir := t.TempDir()
		w := NewFileWriter(dir, discardLogger())

		require.NoError(t, w.Write(ctx, "SALES_x.txt", []string{"a", "b"}))

		data, err := os.ReadFile(filepath.Join(dir, "SALES_x.txt"))
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", string(data))
	})

	t.Run("Existing invoice is overwritten", func(t *testing.T) {
		dir := t.TempDir()
		w := NewFileWriter(dir, discardLogger())

		require.NoError(t, w.Write(ctx, "same.txt", []string{"first", "invoice"}))
		require.NoError(t, w.Write(ctx, "same.txt", []string{"second"}))

		data, err := os.ReadFile(filepath.Join(dir, "same.txt"))
		require.NoError(t, err)
		assert.Equal(t, "second\n", string(data))
	})

	t.Run("Missing directory fails", func(t *testing.T) {
		w := NewFileWriter(filepath.Join(t.TempDir(), "nope"), discardLogger())

		assert.Error(t, w.Write(ctx, "x.txt", []string{"a"}))
	})
}

func TestRedisArchiveKeys(t *testing.T) {
	assert.Equal(t, "invoice:SALES_Sita_2025-3-7_9-5.txt", bodyKey("SALES_Sita_2025-3-7_9-5.txt"))
	assert.Equal(t, "invoices:sales", listKey(KindSales))
	assert.Equal(t, "invoices:restock", listKey(KindRestock))
}

func TestRedisArchiveUnreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	err := NewRedisArchive(rdb).Store(context.Background(), KindSales, "x.txt", []string{"a"})
	assert.Error(t, err)
}
