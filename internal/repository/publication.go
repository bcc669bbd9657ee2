package repository

import (
	"context"

	"autoscheduler/internal/models"

	"gorm.io/gorm"
)

// PublicationRepository defines persistence operations for publications.
type PublicationRepository interface {
	Create(ctx context.Context, publication *models.Publication) error
	ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]models.Publication, error)
}

type publicationRepository struct {
	db *gorm.DB
}

// NewPublicationRepository returns a new PublicationRepository implementation.
func NewPublicationRepository(db *gorm.DB) PublicationRepository {
	return &publicationRepository{db: db}
}

func (r *publicationRepository) Create(ctx context.Context, publication *models.Publication) error {
	if err := r.db.WithContext(ctx).Create(publication).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *publicationRepository) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]models.Publication, error) {
	var publications []models.Publication
	if err := r.db.WithContext(ctx).
		Preload("SocialNetwork").
		Preload("Category").
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&publications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return publications, nil
}
