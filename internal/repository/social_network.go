package repository

import (
	"context"
	"errors"

	"autoscheduler/internal/cache"
	"autoscheduler/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SocialNetworkRepository defines persistence operations for social networks.
type SocialNetworkRepository interface {
	List(ctx context.Context) ([]models.SocialNetwork, error)
	GetByID(ctx context.Context, id uint) (*models.SocialNetwork, error)
	GetByName(ctx context.Context, name string) (*models.SocialNetwork, error)
	Create(ctx context.Context, network *models.SocialNetwork) error
	EnsureNames(ctx context.Context, names []string) error
}

type socialNetworkRepository struct {
	db *gorm.DB
}

// NewSocialNetworkRepository returns a new SocialNetworkRepository implementation.
func NewSocialNetworkRepository(db *gorm.DB) SocialNetworkRepository {
	return &socialNetworkRepository{db: db}
}

// List returns every network ordered by name, served from Redis when cached.
func (r *socialNetworkRepository) List(ctx context.Context) ([]models.SocialNetwork, error) {
	var networks []models.SocialNetwork
	err := cache.Aside(ctx, "social_networks", cache.SocialNetworksKey, &networks, cache.SocialNetworksTTL, func() error {
		if err := r.db.WithContext(ctx).Order("name ASC").Find(&networks).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if networks == nil {
		networks = []models.SocialNetwork{}
	}
	return networks, nil
}

func (r *socialNetworkRepository) GetByID(ctx context.Context, id uint) (*models.SocialNetwork, error) {
	var network models.SocialNetwork
	if err := r.db.WithContext(ctx).First(&network, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Social network", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &network, nil
}

func (r *socialNetworkRepository) GetByName(ctx context.Context, name string) (*models.SocialNetwork, error) {
	var network models.SocialNetwork
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&network).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Social network", name)
		}
		return nil, models.NewInternalError(err)
	}
	return &network, nil
}

func (r *socialNetworkRepository) Create(ctx context.Context, network *models.SocialNetwork) error {
	if err := r.db.WithContext(ctx).Create(network).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Social network already exists", err)
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateSocialNetworks(ctx)
	return nil
}

// EnsureNames inserts any missing networks; existing names are left untouched.
func (r *socialNetworkRepository) EnsureNames(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}
	rows := make([]models.SocialNetwork, 0, len(names))
	for _, name := range names {
		rows = append(rows, models.SocialNetwork{Name: name})
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&rows).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateSocialNetworks(ctx)
	return nil
}
