// Package seed provides database seeding for built-in social networks and
// development demo data.
package seed

import (
	"context"
	"fmt"

	"autoscheduler/internal/repository"
)

// DefaultSocialNetworks is seeded when no names are configured.
var DefaultSocialNetworks = []string{"Twitter"}

// SocialNetworks makes sure every named network exists. Existing rows are
// left untouched, so it is safe to run on every start.
func SocialNetworks(ctx context.Context, repo repository.SocialNetworkRepository, names []string) error {
	if len(names) == 0 {
		names = DefaultSocialNetworks
	}
	if err := repo.EnsureNames(ctx, names); err != nil {
		return fmt.Errorf("seed social networks: %w", err)
	}
	return nil
}
