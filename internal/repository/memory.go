package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jaekwang-park/todo-board/internal/model"
)

// MemoryStore keeps todos and categories in process memory. Both collections
// share one lock so that the category cascade and reference checks see a
// consistent view.
type MemoryStore struct {
	mu            sync.RWMutex
	todos         map[string]model.Todo
	todoOrder     []string
	categories    map[string]model.Category
	categoryOrder []string

	seed  bool
	now   func() time.Time
	newID func() string
}

type MemoryOption func(*MemoryStore)

func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) MemoryOption {
	return func(s *MemoryStore) {
		s.newID = newID
	}
}

// WithoutSeed starts the store empty; Reset then empties it again.
func WithoutSeed() MemoryOption {
	return func(s *MemoryStore) {
		s.seed = false
	}
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		seed:  true,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset drops every record and restores the seed data.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = make(map[string]model.Todo)
	s.todoOrder = nil
	s.categories = make(map[string]model.Category)
	s.categoryOrder = nil

	if !s.seed {
		return
	}

	for _, c := range seedCategories() {
		s.putCategory(c)
	}
	for _, t := range seedTodos(s.now()) {
		s.putTodo(t)
	}
}

func (s *MemoryStore) Todos() *MemoryTodoRepository {
	return &MemoryTodoRepository{store: s}
}

func (s *MemoryStore) Categories() *MemoryCategoryRepository {
	return &MemoryCategoryRepository{store: s}
}

// putTodo and putCategory must be called with mu held for writing.
func (s *MemoryStore) putTodo(t model.Todo) {
	if _, ok := s.todos[t.ID]; !ok {
		s.todoOrder = append(s.todoOrder, t.ID)
	}
	s.todos[t.ID] = cloneTodo(t)
}

func (s *MemoryStore) putCategory(c model.Category) {
	if _, ok := s.categories[c.ID]; !ok {
		s.categoryOrder = append(s.categoryOrder, c.ID)
	}
	s.categories[c.ID] = c
}

func (s *MemoryStore) checkReference(categoryID *string) error {
	if categoryID == nil {
		return nil
	}
	if _, ok := s.categories[*categoryID]; !ok {
		return fmt.Errorf("category %q: %w", *categoryID, ErrInvalidReference)
	}
	return nil
}

type MemoryTodoRepository struct {
	store *MemoryStore
}

func (r *MemoryTodoRepository) Create(ctx context.Context, todo model.Todo) (model.Todo, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkReference(todo.CategoryID); err != nil {
		return model.Todo{}, err
	}

	now := s.now()
	todo.ID = s.newID()
	todo.CreatedAt = now
	todo.UpdatedAt = now
	s.putTodo(todo)

	return cloneTodo(todo), nil
}

func (r *MemoryTodoRepository) GetByID(ctx context.Context, todoID string) (model.Todo, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.todos[todoID]
	if !ok {
		return model.Todo{}, ErrNotFound
	}
	return cloneTodo(t), nil
}

func (r *MemoryTodoRepository) List(ctx context.Context) ([]model.Todo, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	todos := make([]model.Todo, 0, len(s.todoOrder))
	for _, id := range s.todoOrder {
		todos = append(todos, cloneTodo(s.todos[id]))
	}
	return todos, nil
}

func (r *MemoryTodoRepository) Update(ctx context.Context, todo model.Todo) (model.Todo, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.todos[todo.ID]
	if !ok {
		return model.Todo{}, ErrNotFound
	}
	if err := s.checkReference(todo.CategoryID); err != nil {
		return model.Todo{}, err
	}

	todo.CreatedAt = existing.CreatedAt
	todo.UpdatedAt = s.now()
	s.putTodo(todo)

	return cloneTodo(todo), nil
}

func (r *MemoryTodoRepository) Delete(ctx context.Context, todoID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[todoID]; !ok {
		return ErrNotFound
	}
	delete(s.todos, todoID)
	s.todoOrder = slices.DeleteFunc(s.todoOrder, func(id string) bool { return id == todoID })
	return nil
}

type MemoryCategoryRepository struct {
	store *MemoryStore
}

func (r *MemoryCategoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = s.newID()
	s.putCategory(category)
	return category, nil
}

func (r *MemoryCategoryRepository) GetByID(ctx context.Context, categoryID string) (model.Category, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[categoryID]
	if !ok {
		return model.Category{}, ErrNotFound
	}
	return c, nil
}

func (r *MemoryCategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]model.Category, 0, len(s.categoryOrder))
	for _, id := range s.categoryOrder {
		categories = append(categories, s.categories[id])
	}
	return categories, nil
}

func (r *MemoryCategoryRepository) Update(ctx context.Context, category model.Category) (model.Category, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[category.ID]; !ok {
		return model.Category{}, ErrNotFound
	}
	s.putCategory(category)
	return category, nil
}

func (r *MemoryCategoryRepository) Delete(ctx context.Context, categoryID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[categoryID]; !ok {
		return ErrNotFound
	}

	now := s.now()
	for _, id := range s.todoOrder {
		t := s.todos[id]
		if !t.HasCategory(categoryID) {
			continue
		}
		t.CategoryID = nil
		t.UpdatedAt = now
		s.todos[id] = t
	}

	delete(s.categories, categoryID)
	s.categoryOrder = slices.DeleteFunc(s.categoryOrder, func(id string) bool { return id == categoryID })
	return nil
}

func cloneTodo(t model.Todo) model.Todo {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	if t.CategoryID != nil {
		c := *t.CategoryID
		t.CategoryID = &c
	}
	return t
}

var (
	_ TodoRepository     = (*MemoryTodoRepository)(nil)
	_ CategoryRepository = (*MemoryCategoryRepository)(nil)
)
