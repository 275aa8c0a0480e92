package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/shop-api/pkg/logger"
)

const (
	dialTimeout  = 3 * time.Second
	readTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second
	pingTimeout  = 2 * time.Second
)

// NewClient parsea REDIS_URL y devuelve un cliente ya verificado con PING.
func NewClient(ctx context.Context, redisURL string, log *logger.Logger) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: URL inválida: %w", err)
	}
	opts.PoolSize = 10
	opts.MinIdleConns = 1
	opts.DialTimeout = dialTimeout
	opts.ReadTimeout = readTimeout
	opts.WriteTimeout = writeTimeout

	client := goredis.NewClient(opts)
	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}
	log.Info().Str("addr", opts.Addr).Int("db", opts.DB).Msg("redis conectado")
	return client, nil
}

// Ping verifica la conexión con un timeout corto.
func Ping(ctx context.Context, client goredis.Cmdable) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis: ping: %w", err)
	}
	return nil
}
