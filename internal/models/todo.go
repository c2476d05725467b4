package models

import (
	"time"

	"gorm.io/gorm"
)

// TodoStatus enumerates the todo lifecycle states.
type TodoStatus string

const (
	StatusPending    TodoStatus = "PENDING"
	StatusInProgress TodoStatus = "IN_PROGRESS"
	StatusDone       TodoStatus = "DONE"
)

// Valid reports whether s is one of the known statuses.
func (s TodoStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Todo represents a single todo item owned by one user.
// Deletion marks the row instead of purging it.
type Todo struct {
	ID          string     `gorm:"primaryKey;size:36"`
	UserID      string     `gorm:"size:36;index;not null"`
	Title       string     `gorm:"size:50;not null"`
	Description string     `gorm:"size:1000"`
	Status      TodoStatus `gorm:"size:16;index;default:PENDING"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
