package board

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/jaekwang-park/todo-board/internal/client"
	"github.com/jaekwang-park/todo-board/internal/model"
)

// API is the subset of the REST client the board drives.
type API interface {
	ListTodos(ctx context.Context) ([]model.Todo, error)
	CreateTodo(ctx context.Context, req client.CreateTodoRequest) (model.Todo, error)
	UpdateTodo(ctx context.Context, id string, req client.UpdateTodoRequest) (model.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
	ToggleTodo(ctx context.Context, id string) (model.Todo, error)

	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, req client.CreateCategoryRequest) (model.Category, error)
	UpdateCategory(ctx context.Context, id string, req client.UpdateCategoryRequest) (model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// Board caches the server collections and applies the result of each
// confirmed mutation. The cache is never changed by a failed call.
type Board struct {
	api API

	mu         sync.RWMutex
	todos      []model.Todo
	categories []model.Category
	filters    model.TodoFilters
	loading    bool
	fetchErr   error

	todoOps     *Tracker
	categoryOps *Tracker
}

func New(api API) *Board {
	return &Board{
		api:         api,
		todos:       []model.Todo{},
		categories:  []model.Category{},
		filters:     model.DefaultFilters(),
		todoOps:     NewTracker(),
		categoryOps: NewTracker(),
	}
}

// Refresh replaces the cache with the server collections. On failure the
// previous cache is kept and the error is available from FetchErr.
func (b *Board) Refresh(ctx context.Context) error {
	b.mu.Lock()
	b.loading = true
	b.mu.Unlock()

	todos, err := b.api.ListTodos(ctx)
	var categories []model.Category
	if err == nil {
		categories, err = b.api.ListCategories(ctx)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = false
	if err != nil {
		b.fetchErr = fmt.Errorf("failed to load board: %w", err)
		return b.fetchErr
	}
	b.todos = todos
	b.categories = categories
	b.fetchErr = nil
	return nil
}

func (b *Board) Loading() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.loading
}

func (b *Board) FetchErr() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.fetchErr
}

func (b *Board) CreateTodo(ctx context.Context, req client.CreateTodoRequest) (model.Todo, error) {
	b.todoOps.Start(OpCreate, "")
	created, err := b.api.CreateTodo(ctx, req)
	if err == nil {
		b.mu.Lock()
		b.todos = upsertTodo(b.todos, created)
		b.mu.Unlock()
	}
	b.todoOps.Complete(OpCreate, "", err)
	return created, err
}

func (b *Board) UpdateTodo(ctx context.Context, id string, req client.UpdateTodoRequest) (model.Todo, error) {
	b.todoOps.Start(OpUpdate, id)
	updated, err := b.api.UpdateTodo(ctx, id, req)
	if err == nil {
		b.mu.Lock()
		b.todos = upsertTodo(b.todos, updated)
		b.mu.Unlock()
	}
	b.todoOps.Complete(OpUpdate, id, err)
	return updated, err
}

func (b *Board) ToggleTodo(ctx context.Context, id string) (model.Todo, error) {
	b.todoOps.Start(OpToggle, id)
	toggled, err := b.api.ToggleTodo(ctx, id)
	if err == nil {
		b.mu.Lock()
		b.todos = upsertTodo(b.todos, toggled)
		b.mu.Unlock()
	}
	b.todoOps.Complete(OpToggle, id, err)
	return toggled, err
}

func (b *Board) DeleteTodo(ctx context.Context, id string) error {
	b.todoOps.Start(OpDelete, id)
	err := b.api.DeleteTodo(ctx, id)
	if err == nil {
		b.mu.Lock()
		b.todos = removeTodo(b.todos, id)
		b.mu.Unlock()
	}
	b.todoOps.Complete(OpDelete, id, err)
	return err
}

func (b *Board) CreateCategory(ctx context.Context, req client.CreateCategoryRequest) (model.Category, error) {
	b.categoryOps.Start(OpCreate, "")
	created, err := b.api.CreateCategory(ctx, req)
	if err == nil {
		b.mu.Lock()
		b.categories = upsertCategory(b.categories, created)
		b.mu.Unlock()
	}
	b.categoryOps.Complete(OpCreate, "", err)
	return created, err
}

func (b *Board) UpdateCategory(ctx context.Context, id string, req client.UpdateCategoryRequest) (model.Category, error) {
	b.categoryOps.Start(OpUpdate, id)
	updated, err := b.api.UpdateCategory(ctx, id, req)
	if err == nil {
		b.mu.Lock()
		b.categories = upsertCategory(b.categories, updated)
		b.mu.Unlock()
	}
	b.categoryOps.Complete(OpUpdate, id, err)
	return updated, err
}

// DeleteCategory removes the category and mirrors the server cascade by
// clearing the category of cached todos that referenced it. A category
// filter pointing at it is reset to any.
func (b *Board) DeleteCategory(ctx context.Context, id string) error {
	b.categoryOps.Start(OpDelete, id)
	err := b.api.DeleteCategory(ctx, id)
	if err == nil {
		b.mu.Lock()
		b.categories = slices.DeleteFunc(slices.Clone(b.categories), func(c model.Category) bool { return c.ID == id })
		b.todos = clearCategory(b.todos, id)
		if b.filters.CategoryID != nil && *b.filters.CategoryID == id {
			b.filters.CategoryID = nil
		}
		b.mu.Unlock()
	}
	b.categoryOps.Complete(OpDelete, id, err)
	return err
}

func (b *Board) SetStatusFilter(status model.FilterStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters.Status = status
}

// SetCategoryFilter restricts the view to one category; nil shows all.
func (b *Board) SetCategoryFilter(categoryID *string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if categoryID != nil {
		id := *categoryID
		categoryID = &id
	}
	b.filters.CategoryID = categoryID
}

func (b *Board) SetSortBy(sortBy model.SortBy) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters.SortBy = sortBy
}

func (b *Board) SetSortOrder(order model.SortOrder) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters.SortOrder = order
}

func (b *Board) ToggleSortOrder() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.filters.SortOrder = b.filters.SortOrder.Reverse()
}

func (b *Board) Filters() model.TodoFilters {
	b.mu.RLock()
	defer b.mu.RUnlock()
	f := b.filters
	if f.CategoryID != nil {
		id := *f.CategoryID
		f.CategoryID = &id
	}
	return f
}

func (b *Board) Todos() []model.Todo {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.todos)
}

func (b *Board) Categories() []model.Category {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.categories)
}

func (b *Board) Visible() []model.Todo {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return VisibleTodos(b.todos, b.filters)
}

func (b *Board) Groups() []CategoryGroup {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return GroupByCategory(VisibleTodos(b.todos, b.filters), b.categories)
}

// Stats covers the whole cached collection, ignoring filters.
func (b *Board) Stats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ComputeStats(b.todos)
}

func (b *Board) TodoTracker() *Tracker {
	return b.todoOps
}

func (b *Board) CategoryTracker() *Tracker {
	return b.categoryOps
}

// The helpers below return new slices so that views handed out earlier
// never observe later mutations.

func upsertTodo(todos []model.Todo, t model.Todo) []model.Todo {
	out := slices.Clone(todos)
	if i := slices.IndexFunc(out, func(x model.Todo) bool { return x.ID == t.ID }); i >= 0 {
		out[i] = t
		return out
	}
	return append(out, t)
}

func removeTodo(todos []model.Todo, id string) []model.Todo {
	return slices.DeleteFunc(slices.Clone(todos), func(t model.Todo) bool { return t.ID == id })
}

func clearCategory(todos []model.Todo, categoryID string) []model.Todo {
	out := slices.Clone(todos)
	for i := range out {
		if out[i].HasCategory(categoryID) {
			out[i].CategoryID = nil
		}
	}
	return out
}

func upsertCategory(categories []model.Category, c model.Category) []model.Category {
	out := slices.Clone(categories)
	if i := slices.IndexFunc(out, func(x model.Category) bool { return x.ID == c.ID }); i >= 0 {
		out[i] = c
		return out
	}
	return append(out, c)
}
