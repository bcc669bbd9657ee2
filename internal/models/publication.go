package models

import (
	"time"
	"unicode/utf8"
)

const publicationSummaryLen = 89

// Publication is a single item posted on a social network.
type Publication struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	AuthorID        uint           `gorm:"not null;index" json:"author_id"`
	Author          *User          `gorm:"foreignKey:AuthorID" json:"-"`
	SocialNetworkID uint           `gorm:"not null;index" json:"social_network_id"`
	SocialNetwork   *SocialNetwork `gorm:"foreignKey:SocialNetworkID" json:"social_network,omitempty"`
	Content         string         `gorm:"type:text;not null" json:"content"`
	CategoryID      *uint          `gorm:"index" json:"category_id,omitempty"`
	Category        *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// Summary returns the content truncated for list views.
func (p *Publication) Summary() string {
	if utf8.RuneCountInString(p.Content) <= publicationSummaryLen {
		return p.Content
	}
	runes := []rune(p.Content)
	return string(runes[:publicationSummaryLen-1]) + "…"
}
