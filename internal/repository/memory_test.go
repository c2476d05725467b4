package repository

import (
	"context"
	"errors"
	"testing"

	"todoapp/internal/models"
)

func newTodo(id, userID, title string) *models.Todo {
	return &models.Todo{
		ID:     id,
		UserID: userID,
		Title:  title,
		Status: models.StatusPending,
	}
}

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	user := &models.User{ID: "u1", Email: "a@example.com", PasswordHash: "h", Name: "A"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Error("Create should fill timestamps")
	}

	got, err := repo.FindByEmail(ctx, "a@example.com")
	if err != nil {
		t.Fatalf("FindByEmail failed: %v", err)
	}
	if got.ID != "u1" {
		t.Errorf("FindByEmail ID = %q, want u1", got.ID)
	}

	if _, err := repo.FindByEmail(ctx, "missing@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByEmail(missing) error = %v, want ErrNotFound", err)
	}

	if _, err := repo.FindByID(ctx, "u1"); err != nil {
		t.Errorf("FindByID failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMemoryTodoRepository_ListOrderAndScope(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTodoRepository()

	for _, todo := range []*models.Todo{
		newTodo("t1", "alice", "first"),
		newTodo("t2", "alice", "second"),
		newTodo("t3", "bob", "other"),
	} {
		if err := repo.Create(ctx, todo); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	todos, err := repo.ListByOwner(ctx, "alice", "")
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("len = %d, want 2", len(todos))
	}
	if todos[0].ID != "t1" || todos[1].ID != "t2" {
		t.Errorf("list order = [%s %s], want [t1 t2]", todos[0].ID, todos[1].ID)
	}
}

func TestMemoryTodoRepository_StatusFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTodoRepository()

	done := newTodo("t1", "alice", "done one")
	done.Status = models.StatusDone
	repo.Create(ctx, done)
	repo.Create(ctx, newTodo("t2", "alice", "pending one"))

	todos, err := repo.ListByOwner(ctx, "alice", models.StatusDone)
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}
	if len(todos) != 1 || todos[0].ID != "t1" {
		t.Errorf("filtered list = %v, want only t1", todos)
	}
}

func TestMemoryTodoRepository_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTodoRepository()
	repo.Create(ctx, newTodo("t1", "alice", "mine"))

	if _, err := repo.FindByOwnerAndID(ctx, "bob", "t1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("other owner's find error = %v, want ErrNotFound", err)
	}
	if _, err := repo.FindByOwnerAndID(ctx, "alice", "t1"); err != nil {
		t.Errorf("owner's find failed: %v", err)
	}
}

func TestMemoryTodoRepository_SoftDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTodoRepository()

	todo := newTodo("t1", "alice", "to delete")
	repo.Create(ctx, todo)

	if err := repo.SoftDelete(ctx, todo); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}

	if _, err := repo.FindByOwnerAndID(ctx, "alice", "t1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("deleted todo find error = %v, want ErrNotFound", err)
	}

	todos, _ := repo.ListByOwner(ctx, "alice", "")
	if len(todos) != 0 {
		t.Errorf("deleted todo still listed: %v", todos)
	}

	// deleting again reports not found
	if err := repo.SoftDelete(ctx, todo); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestMemoryTodoRepository_Save(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTodoRepository()

	todo := newTodo("t1", "alice", "before")
	repo.Create(ctx, todo)

	todo.Title = "after"
	if err := repo.Save(ctx, todo); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, _ := repo.FindByOwnerAndID(ctx, "alice", "t1")
	if got.Title != "after" {
		t.Errorf("Title = %q, want %q", got.Title, "after")
	}

	if err := repo.Save(ctx, newTodo("missing", "alice", "x")); !errors.Is(err, ErrNotFound) {
		t.Errorf("Save(missing) error = %v, want ErrNotFound", err)
	}
}
