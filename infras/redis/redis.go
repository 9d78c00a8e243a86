package redis

import (
	"context"
	"net"
	"tasktracker/config"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

// New builds the client used by the rate limiter. The server is only pinged
// when the limiter is enabled; an unreachable server is logged, not fatal,
// since the limiter fails open.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	if !config.App.RateLimiter.Enable {
		return client
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Warn().Err(err).Str("host", primary.Host).Str("port", primary.Port).Msg("Redis is not reachable, rate limiting will be skipped")

		return client
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}
