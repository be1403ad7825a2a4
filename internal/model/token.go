package model

import "time"

// Token is an opaque bearer token. One per user; logout deletes it.
type Token struct {
	Key       string `gorm:"primaryKey;size:40"`
	UserID    string `gorm:"size:36;uniqueIndex;not null"`
	User      User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}
