package database

import (
	"context"
	"log/slog"

	"autoscheduler/internal/middleware"
	"autoscheduler/internal/models"

	"gorm.io/gorm"
)

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.SocialNetwork{},
		&models.Category{},
		&models.Publication{},
		&models.RecurrenceRule{},
		&models.PublishEvent{},
	}
}

// ApplySchema migrates every persistent model. The unique index on
// recurrence_rules.name backs the rule upsert.
func ApplySchema(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(PersistentModels()...); err != nil {
		return err
	}
	middleware.Logger.InfoContext(ctx, "Database migration completed",
		slog.Int("models", len(PersistentModels())),
	)
	return nil
}
