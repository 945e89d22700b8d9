//go:build integration

package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	redisOnce   sync.Once
	redisServer *miniredis.Miniredis
	redisClient *redis.Client
)

// NewRedis returns a client for the shared in-memory Redis that carries the
// change feed during the suite.
func NewRedis() *redis.Client {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisServer = server
		redisClient = redis.NewClient(&redis.Options{Addr: server.Addr()})
	})
	return redisClient
}

// ClearRedis drops every key. Pub/Sub subscriptions are not keys and survive.
func ClearRedis() {
	if redisServer != nil {
		redisServer.FlushAll()
	}
}
