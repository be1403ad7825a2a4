package model

import (
	"fmt"
	"time"
)

type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	FirstName    string `gorm:"size:30;not null"`
	LastName     string `gorm:"size:30;not null"`
	Email        string `gorm:"size:254;uniqueIndex;not null"`
	Username     string `gorm:"size:50;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	IsStaff      bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
