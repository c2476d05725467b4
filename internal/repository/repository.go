// Package repository defines the persistence interfaces for users and todos,
// with a GORM/SQLite backing for the server and an in-memory backing for tests.
package repository

import (
	"context"
	"errors"

	"todoapp/internal/models"
)

// ErrNotFound is returned when no row matches the query.
var ErrNotFound = errors.New("record not found")

// UserRepository persists user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// TodoRepository persists todo items. Every lookup is scoped by the owning
// user id; soft-deleted rows never surface.
type TodoRepository interface {
	Create(ctx context.Context, todo *models.Todo) error
	// ListByOwner returns the owner's non-deleted todos in creation order.
	// An empty status means no status filter.
	ListByOwner(ctx context.Context, userID string, status models.TodoStatus) ([]models.Todo, error)
	FindByOwnerAndID(ctx context.Context, userID, id string) (*models.Todo, error)
	Save(ctx context.Context, todo *models.Todo) error
	SoftDelete(ctx context.Context, todo *models.Todo) error
}
