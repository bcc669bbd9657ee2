package models

import "time"

// SocialNetwork is a network publications are posted to.
type SocialNetwork struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (SocialNetwork) TableName() string {
	return "social_networks"
}
