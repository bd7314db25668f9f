package invoice

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// Archive keeps a copy of written invoices outside the working directory.
type Archive interface {
	Store(ctx context.Context, kind Kind, name string, lines []string) error
}

// RedisArchive stores each invoice body under invoice:{name} and appends the name to the
// per-kind list invoices:{kind}.
type RedisArchive struct {
	rdb *redis.Client
}

// NewRedisArchive creates an archive writing through rdb.
func NewRedisArchive(rdb *redis.Client) *RedisArchive {
	return &RedisArchive{rdb: rdb}
}

func (a *RedisArchive) Store(ctx context.Context, kind Kind, name string, lines []string) error {
	pipe := a.rdb.TxPipeline()
	pipe.Set(ctx, bodyKey(name), strings.Join(lines, "\n"), 0)
	pipe.RPush(ctx, listKey(kind), name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to archive invoice %s: %w", name, err)
	}
	return nil
}

func bodyKey(name string) string {
	return "invoice:" + name
}

func listKey(kind Kind) string {
	return "invoices:" + strings.ToLower(string(kind))
}
