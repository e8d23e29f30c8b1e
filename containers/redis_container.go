package containers

import (
	"context"

	"github.com/testcontainers/testcontainers-go/modules/redis"
)

const redisImage = "redis:7.4-alpine"

type RedisContainer struct {
	container *redis.RedisContainer
}

func NewRedisContainer() *RedisContainer {
	container := mustRun("redis", func(ctx context.Context) (*redis.RedisContainer, error) {
		return redis.Run(ctx, redisImage)
	})

	return &RedisContainer{
		container: container,
	}
}

func (c *RedisContainer) Shutdown() {
	mustTerminate("redis", c.container)
}

// ConnectionString returns a redis:// url for the container.
func (c *RedisContainer) ConnectionString() string {
	return mustConnectionString("redis", c.container.ConnectionString)
}
