package models

import "time"

// PublishEvent is a recurring publication slot for one social network and
// category, active between Start and End.
type PublishEvent struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Title           string          `gorm:"size:255;not null" json:"title"`
	Start           time.Time       `gorm:"column:starts_at;not null;index" json:"start"`
	End             time.Time       `gorm:"column:ends_at;not null" json:"end"`
	RuleID          uint            `gorm:"not null;index" json:"rule_id"`
	Rule            *RecurrenceRule `gorm:"foreignKey:RuleID" json:"rule,omitempty"`
	CategoryID      uint            `gorm:"not null;index" json:"category_id"`
	Category        *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SocialNetworkID uint            `gorm:"not null;index" json:"social_network_id"`
	SocialNetwork   *SocialNetwork  `gorm:"foreignKey:SocialNetworkID" json:"social_network,omitempty"`
	CreatorID       uint            `gorm:"not null;index" json:"creator_id"`
	Creator         *User           `gorm:"foreignKey:CreatorID" json:"-"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TableName specifies the table name for GORM.
func (PublishEvent) TableName() string {
	return "publish_events"
}
