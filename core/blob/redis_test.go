package blob

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func unreachableRedis(t *testing.T) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStoreWithClient(client, "cache/")
}

func TestRedisStore_Key(t *testing.T) {
	store := unreachableRedis(t)
	assert.Equal(t, "cache/prices.json", store.key("prices.json"))
}

func TestRedisStore_InvalidID(t *testing.T) {
	store := unreachableRedis(t)
	ctx := context.Background()

	_, err := store.Read(ctx, "../etc")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, store.Write(ctx, "", []byte("x")), ErrInvalidID)
	_, err = store.Exists(ctx, "a/b")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestRedisStore_Unreachable(t *testing.T) {
	store := unreachableRedis(t)
	ctx := context.Background()

	_, err := store.Read(ctx, "all.json")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound, "connection failures are not cache misses")

	_, err = NewRedisStore(ctx, Config{Driver: DriverRedis, RedisAddr: "127.0.0.1:1"})
	assert.ErrorContains(t, err, "failed to connect to redis")
}
