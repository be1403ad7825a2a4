package model

import "time"

type Option struct {
	ID         string `gorm:"primaryKey;size:36"`
	PollID     string `gorm:"size:36;not null;uniqueIndex:idx_poll_option_text"`
	Poll       Poll   `gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE"`
	OptionText string `gorm:"size:200;not null;uniqueIndex:idx_poll_option_text"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
