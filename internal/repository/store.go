package repository

import (
	"context"

	"gorm.io/gorm"
)

// ScheduleStore runs rule and event writes inside one database transaction.
type ScheduleStore interface {
	WithinTransaction(ctx context.Context, fn func(rules RuleRepository, events EventRepository) error) error
}

type gormScheduleStore struct {
	db *gorm.DB
}

// NewScheduleStore returns a ScheduleStore backed by db.
func NewScheduleStore(db *gorm.DB) ScheduleStore {
	return &gormScheduleStore{db: db}
}

func (s *gormScheduleStore) WithinTransaction(ctx context.Context, fn func(rules RuleRepository, events EventRepository) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRuleRepository(tx), NewEventRepository(tx))
	})
}
