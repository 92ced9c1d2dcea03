package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisMock *Redis

// Redis wraps an in-process miniredis server and a client connected to it.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

func NewRedis() *Redis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisMock = &Redis{
			Server: server,
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		}
	})

	return redisMock
}

func (r *Redis) Clear() error {
	return r.Client.FlushAll(context.TODO()).Err()
}

func (r *Redis) Keys(pattern string) ([]string, error) {
	return r.Client.Keys(context.TODO(), pattern).Result()
}
