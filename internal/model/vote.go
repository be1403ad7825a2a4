package model

import "time"

type Vote struct {
	ID        string `gorm:"primaryKey;size:36"`
	PollID    string `gorm:"size:36;not null;uniqueIndex:idx_vote_poll_user"`
	Poll      Poll   `gorm:"foreignKey:PollID;constraint:OnDelete:CASCADE"`
	OptionID  string `gorm:"size:36;not null"`
	Option    Option `gorm:"foreignKey:OptionID;constraint:OnDelete:CASCADE"`
	UserID    string `gorm:"size:36;not null;uniqueIndex:idx_vote_poll_user"`
	User      User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}
