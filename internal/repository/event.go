package repository

import (
	"context"
	"errors"

	"autoscheduler/internal/models"

	"gorm.io/gorm"
)

// EventRepository defines persistence operations for publish events.
type EventRepository interface {
	FindOrCreate(ctx context.Context, event *models.PublishEvent) (*models.PublishEvent, bool, error)
	GetByID(ctx context.Context, id uint) (*models.PublishEvent, error)
	ListByCreator(ctx context.Context, creatorID uint, limit, offset int) ([]models.PublishEvent, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository returns a new EventRepository implementation.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// FindOrCreate matches on every attribute of event (title, start, end, rule,
// category, social network and creator). The bool reports whether a row was inserted.
func (r *eventRepository) FindOrCreate(ctx context.Context, event *models.PublishEvent) (*models.PublishEvent, bool, error) {
	cond := models.PublishEvent{
		Title:           event.Title,
		Start:           event.Start,
		End:             event.End,
		RuleID:          event.RuleID,
		CategoryID:      event.CategoryID,
		SocialNetworkID: event.SocialNetworkID,
		CreatorID:       event.CreatorID,
	}

	var existing models.PublishEvent
	res := r.db.WithContext(ctx).Where(&cond).Limit(1).Find(&existing)
	if res.Error != nil {
		return nil, false, models.NewInternalError(res.Error)
	}
	if res.RowsAffected > 0 {
		return &existing, false, nil
	}

	created := cond
	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, false, models.NewInternalError(err)
	}
	return &created, true, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id uint) (*models.PublishEvent, error) {
	var event models.PublishEvent
	if err := r.db.WithContext(ctx).
		Preload("Rule").
		Preload("SocialNetwork").
		Preload("Category").
		First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Publish event", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &event, nil
}

func (r *eventRepository) ListByCreator(ctx context.Context, creatorID uint, limit, offset int) ([]models.PublishEvent, error) {
	var events []models.PublishEvent
	if err := r.db.WithContext(ctx).
		Preload("Rule").
		Preload("SocialNetwork").
		Preload("Category").
		Where("creator_id = ?", creatorID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}
