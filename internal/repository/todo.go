package repository

import (
	"context"

	"github.com/jaekwang-park/todo-board/internal/model"
)

// TodoRepository stores todos. Create assigns the id and both timestamps;
// Update refreshes UpdatedAt. List returns todos in insertion order.
type TodoRepository interface {
	Create(ctx context.Context, todo model.Todo) (model.Todo, error)
	GetByID(ctx context.Context, todoID string) (model.Todo, error)
	List(ctx context.Context) ([]model.Todo, error)
	Update(ctx context.Context, todo model.Todo) (model.Todo, error)
	Delete(ctx context.Context, todoID string) error
}
