package repository

import (
	"context"
	"errors"
	"fmt"

	"autoscheduler/internal/models"
	"autoscheduler/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// maxRuleUpsertAttempts bounds the insert-then-read loop of FindOrCreateByName.
const maxRuleUpsertAttempts = 3

// RuleRepository defines persistence operations for recurrence rules.
type RuleRepository interface {
	FindOrCreateByName(ctx context.Context, rule *models.RecurrenceRule) (*models.RecurrenceRule, error)
	GetByID(ctx context.Context, id uint) (*models.RecurrenceRule, error)
}

type ruleRepository struct {
	db *gorm.DB
}

// NewRuleRepository returns a new RuleRepository implementation.
func NewRuleRepository(db *gorm.DB) RuleRepository {
	return &ruleRepository{db: db}
}

// FindOrCreateByName returns the rule named rule.Name, inserting rule when no
// such rule exists. An existing rule is returned unchanged. The insert is
// ON CONFLICT (name) DO NOTHING so concurrent callers never trip the unique
// index; the row is always read back by name. A unique violation on any other
// constraint aborts the enclosing transaction, so it is reported as a conflict
// rather than retried.
func (r *ruleRepository) FindOrCreateByName(ctx context.Context, rule *models.RecurrenceRule) (*models.RecurrenceRule, error) {
	for attempt := 1; attempt <= maxRuleUpsertAttempts; attempt++ {
		if attempt > 1 {
			observability.RuleUpsertRetries.Inc()
		}

		candidate := models.RecurrenceRule{
			Name:        rule.Name,
			Description: rule.Description,
			Frequency:   rule.Frequency,
			Params:      rule.Params,
		}
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&candidate).Error; err != nil {
			if isUniqueConstraintError(err) {
				return nil, models.NewConflictError("Recurrence rule already exists", err)
			}
			return nil, models.NewInternalError(fmt.Errorf("insert recurrence rule: %w", err))
		}

		var found models.RecurrenceRule
		err := r.db.WithContext(ctx).Where("name = ?", rule.Name).First(&found).Error
		if err == nil {
			return &found, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewInternalError(fmt.Errorf("read recurrence rule: %w", err))
		}
	}
	return nil, models.NewConflictError("Recurrence rule could not be resolved",
		fmt.Errorf("rule %q not visible after %d attempts", rule.Name, maxRuleUpsertAttempts))
}

func (r *ruleRepository) GetByID(ctx context.Context, id uint) (*models.RecurrenceRule, error) {
	var rule models.RecurrenceRule
	if err := r.db.WithContext(ctx).First(&rule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Recurrence rule", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &rule, nil
}
