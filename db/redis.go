package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisOptions struct {
	Host     string
	Password string
}

func NewConnectionRedis(opts RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Host,
		Password: opts.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
