package repository

import (
	"context"

	"github.com/jaekwang-park/todo-board/internal/model"
)

// CategoryRepository stores categories. Delete also clears the category
// reference on every todo that pointed at it, in the same unit of work.
type CategoryRepository interface {
	Create(ctx context.Context, category model.Category) (model.Category, error)
	GetByID(ctx context.Context, categoryID string) (model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category model.Category) (model.Category, error)
	Delete(ctx context.Context, categoryID string) error
}
