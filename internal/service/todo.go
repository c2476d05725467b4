package service

import (
	"context"
	"errors"
	"fmt"

	"todoapp/internal/models"
	"todoapp/internal/repository"
	"todoapp/internal/util"

	"github.com/google/uuid"
)

// TodoService enforces ownership scoping around the todo store. Every
// operation takes the authenticated user id explicitly; nothing here reads
// identity from ambient state.
type TodoService struct {
	todos repository.TodoRepository
}

func NewTodoService(todos repository.TodoRepository) *TodoService {
	return &TodoService{todos: todos}
}

// TodoPatch is a partial update; nil fields are left unchanged.
type TodoPatch struct {
	Title       *string
	Description *string
	Status      *string
}

// List returns the user's non-deleted todos in creation order, optionally
// restricted to one status. An unknown status value is a validation error.
func (s *TodoService) List(ctx context.Context, userID, status string) ([]models.Todo, error) {
	filter := models.TodoStatus(status)
	if status != "" && !filter.Valid() {
		return nil, validationErr(fmt.Errorf("invalid status %q", status))
	}

	todos, err := s.todos.ListByOwner(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// Create stores a new PENDING todo owned by userID.
func (s *TodoService) Create(ctx context.Context, userID, title, description string) (*models.Todo, error) {
	if err := util.ValidateTitle(title); err != nil {
		return nil, validationErr(err)
	}
	if err := util.ValidateDescription(description); err != nil {
		return nil, validationErr(err)
	}

	todo := &models.Todo{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      models.StatusPending,
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return todo, nil
}

// GetByID returns the todo only if it exists, is not deleted and belongs to
// userID; every other case is ErrNotFound.
func (s *TodoService) GetByID(ctx context.Context, userID, id string) (*models.Todo, error) {
	todo, err := s.todos.FindByOwnerAndID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return todo, nil
}

// Update applies only the provided patch fields and persists the todo.
// Status transitions are unrestricted in either direction.
func (s *TodoService) Update(ctx context.Context, userID, id string, patch TodoPatch) (*models.Todo, error) {
	todo, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		if err := util.ValidateTitle(*patch.Title); err != nil {
			return nil, validationErr(err)
		}
		todo.Title = *patch.Title
	}
	if patch.Description != nil {
		if err := util.ValidateDescription(*patch.Description); err != nil {
			return nil, validationErr(err)
		}
		todo.Description = *patch.Description
	}
	if patch.Status != nil {
		status := models.TodoStatus(*patch.Status)
		if !status.Valid() {
			return nil, validationErr(fmt.Errorf("invalid status %q", *patch.Status))
		}
		todo.Status = status
	}

	if err := s.todos.Save(ctx, todo); err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return todo, nil
}

// Delete soft-deletes the todo; it stays in storage but disappears from
// all subsequent reads.
func (s *TodoService) Delete(ctx context.Context, userID, id string) error {
	todo, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.todos.SoftDelete(ctx, todo); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}
