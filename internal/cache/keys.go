package cache

import (
	"context"
	"time"
)

const (
	// SocialNetworksKey holds the JSON-encoded list of all social networks.
	SocialNetworksKey = "social_networks:all"
)

const (
	SocialNetworksTTL = 10 * time.Minute
)

// InvalidateSocialNetworks drops the cached social network list.
func InvalidateSocialNetworks(ctx context.Context) {
	Invalidate(ctx, SocialNetworksKey)
}

// Invalidate deletes key, ignoring errors.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}
