package models

import "time"

// User represents an application account.
type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Name         string `gorm:"size:64"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
