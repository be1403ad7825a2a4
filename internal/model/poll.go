package model

import (
	"time"
)

type Poll struct {
	ID          string `gorm:"primaryKey;size:36"`
	Title       string `gorm:"size:200;not null"`
	Question    string `gorm:"not null"`
	Description string
	ExpiresAt   *time.Time
	CreatedByID string `gorm:"size:36;not null"`
	CreatedBy   User   `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE"`
	Options     []Option
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive reports whether the poll still accepts votes.
func (p Poll) IsActive(now time.Time) bool {
	if p.ExpiresAt == nil {
		return true
	}
	return now.Before(*p.ExpiresAt)
}
