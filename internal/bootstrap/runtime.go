// Package bootstrap wires the runtime dependencies shared by the commands.
package bootstrap

import (
	"context"
	"fmt"

	"autoscheduler/internal/cache"
	"autoscheduler/internal/config"
	"autoscheduler/internal/database"
	"autoscheduler/internal/repository"
	"autoscheduler/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedNetworks ensures the configured social networks exist.
	SeedNetworks bool
}

// InitRuntime connects to the database and Redis and optionally seeds the
// configured social networks. The Redis client is nil when Redis is unreachable.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedNetworks {
		repo := repository.NewSocialNetworkRepository(db)
		if err := seed.SocialNetworks(ctx, repo, cfg.SeedNetworkNames()); err != nil {
			return nil, nil, err
		}
	}

	return db, r, nil
}
