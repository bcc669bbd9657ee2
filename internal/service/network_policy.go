// Package service implements the application's business operations on top of the repositories.
package service

import (
	"strings"

	"autoscheduler/internal/models"
)

// DefaultNetworkPolicy decides which social network a new form preselects.
// When Name is set it alone decides: the matching network, or no default if
// none matches. Without a Name, UseSingle picks the only network when exactly
// one exists.
type DefaultNetworkPolicy struct {
	Name      string
	UseSingle bool
}

// Resolve returns the default network among networks, or nil for no default.
func (p DefaultNetworkPolicy) Resolve(networks []models.SocialNetwork) *models.SocialNetwork {
	if name := strings.TrimSpace(p.Name); name != "" {
		for i := range networks {
			if strings.EqualFold(networks[i].Name, name) {
				return &networks[i]
			}
		}
		return nil
	}
	if p.UseSingle && len(networks) == 1 {
		return &networks[0]
	}
	return nil
}

func (p DefaultNetworkPolicy) resolveID(networks []models.SocialNetwork) *uint {
	if n := p.Resolve(networks); n != nil {
		id := n.ID
		return &id
	}
	return nil
}
