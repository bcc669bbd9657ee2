package models

import "time"

// RecurrenceRule is a named weekly schedule. Name is unique so identical
// weekday/time requests share one rule.
type RecurrenceRule struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Frequency   string    `gorm:"size:10;not null" json:"frequency"`
	Params      string    `gorm:"type:text" json:"params"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (RecurrenceRule) TableName() string {
	return "recurrence_rules"
}
