package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce   sync.Once
	redisClient *redis.Client
)

// NewRedis starts (once per test binary) an embedded miniredis server and
// returns a client connected to it. The token denylist lives here in tests.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		srv, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisClient = redis.NewClient(&redis.Options{Addr: srv.Addr()})
	})
	return redisClient
}

// ClearRedis flushes all keys, dropping any tokens revoked in a prior scenario.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.Background()).Err()
}
