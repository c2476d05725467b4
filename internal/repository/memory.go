package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"todoapp/internal/models"

	"gorm.io/gorm"
)

type memoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string // email -> id
}

// NewMemoryUserRepository returns an in-memory UserRepository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	user := r.byID[id]
	return &user, nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

type memoryTodoRow struct {
	seq  int64
	todo models.Todo
}

type memoryTodoRepository struct {
	mu   sync.RWMutex
	seq  int64
	rows map[string]*memoryTodoRow
}

// NewMemoryTodoRepository returns an in-memory TodoRepository with the same
// visibility rules as the GORM backing: soft-deleted rows never surface and
// listing follows creation order.
func NewMemoryTodoRepository() TodoRepository {
	return &memoryTodoRepository{rows: make(map[string]*memoryTodoRow)}
}

func (r *memoryTodoRepository) Create(ctx context.Context, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = now
	}
	todo.UpdatedAt = now

	r.seq++
	r.rows[todo.ID] = &memoryTodoRow{seq: r.seq, todo: *todo}
	return nil
}

func (r *memoryTodoRepository) ListByOwner(ctx context.Context, userID string, status models.TodoStatus) ([]models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*memoryTodoRow
	for _, row := range r.rows {
		if row.todo.DeletedAt.Valid || row.todo.UserID != userID {
			continue
		}
		if status != "" && row.todo.Status != status {
			continue
		}
		matched = append(matched, row)
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].seq < matched[j].seq })

	todos := make([]models.Todo, 0, len(matched))
	for _, row := range matched {
		todos = append(todos, row.todo)
	}
	return todos, nil
}

func (r *memoryTodoRepository) FindByOwnerAndID(ctx context.Context, userID, id string) (*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok || row.todo.DeletedAt.Valid || row.todo.UserID != userID {
		return nil, ErrNotFound
	}
	todo := row.todo
	return &todo, nil
}

func (r *memoryTodoRepository) Save(ctx context.Context, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[todo.ID]
	if !ok || row.todo.DeletedAt.Valid {
		return ErrNotFound
	}

	todo.UpdatedAt = time.Now()
	row.todo = *todo
	return nil
}

func (r *memoryTodoRepository) SoftDelete(ctx context.Context, todo *models.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[todo.ID]
	if !ok || row.todo.DeletedAt.Valid {
		return ErrNotFound
	}

	row.todo.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	return nil
}
