package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jaekwang-park/todo-board/internal/model"
	"github.com/jaekwang-park/todo-board/internal/repository"
	"github.com/jaekwang-park/todo-board/internal/validation"
)

type CreateTodoInput struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=1000"`
	DueDate     *string `json:"dueDate"`
	CategoryID  *string `json:"categoryId"`
	Completed   bool    `json:"completed"`
}

// UpdateTodoInput is a partial update. Nil pointers and unset Nullable fields
// leave the stored value alone; a Nullable set to null clears it.
type UpdateTodoInput struct {
	Title       *string                `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string                `json:"description" validate:"omitempty,max=1000"`
	DueDate     model.Nullable[string] `json:"dueDate" validate:"-"`
	CategoryID  model.Nullable[string] `json:"categoryId" validate:"-"`
	Completed   *bool                  `json:"completed"`
}

type TodoService struct {
	todos      repository.TodoRepository
	categories repository.CategoryRepository
	validator  *validation.Validator
}

func NewTodoService(todos repository.TodoRepository, categories repository.CategoryRepository) *TodoService {
	return &TodoService{
		todos:      todos,
		categories: categories,
		validator:  validation.New(),
	}
}

// parseDueDate records a field error on verr when s is not a valid date.
func parseDueDate(s *string, verr *validation.Error) *model.Date {
	if s == nil {
		return nil
	}
	d, err := model.ParseDate(*s)
	if err != nil {
		verr.Add("dueDate", "Must be a date (YYYY-MM-DD) or an RFC3339 timestamp")
		return nil
	}
	return &d
}

func (s *TodoService) Create(ctx context.Context, input CreateTodoInput) (model.Todo, error) {
	verr := s.validator.Check(input)
	dueDate := parseDueDate(input.DueDate, verr)
	if err := verr.Err(); err != nil {
		return model.Todo{}, err
	}

	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return model.Todo{}, err
	}

	todo := model.Todo{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     dueDate,
		CategoryID:  input.CategoryID,
		Completed:   input.Completed,
	}

	created, err := s.todos.Create(ctx, todo)
	if err != nil {
		return model.Todo{}, mapRepoError(err, "todo", "create todo")
	}
	return created, nil
}

func (s *TodoService) GetByID(ctx context.Context, todoID string) (model.Todo, error) {
	todo, err := s.todos.GetByID(ctx, todoID)
	if err != nil {
		return model.Todo{}, mapRepoError(err, fmt.Sprintf("todo %q", todoID), "get todo")
	}
	return todo, nil
}

func (s *TodoService) List(ctx context.Context) ([]model.Todo, error) {
	todos, err := s.todos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

func (s *TodoService) Update(ctx context.Context, todoID string, input UpdateTodoInput) (model.Todo, error) {
	verr := s.validator.Check(input)
	var dueDate *model.Date
	if input.DueDate.Valid {
		dueDate = parseDueDate(&input.DueDate.Value, verr)
	}
	if err := verr.Err(); err != nil {
		return model.Todo{}, err
	}

	existing, err := s.todos.GetByID(ctx, todoID)
	if err != nil {
		return model.Todo{}, mapRepoError(err, fmt.Sprintf("todo %q", todoID), "get todo for update")
	}

	if input.Title != nil {
		existing.Title = *input.Title
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.DueDate.Set {
		existing.DueDate = dueDate
	}
	if input.CategoryID.Set {
		if err := s.checkCategory(ctx, input.CategoryID.Ptr()); err != nil {
			return model.Todo{}, err
		}
		existing.CategoryID = input.CategoryID.Ptr()
	}
	if input.Completed != nil {
		existing.Completed = *input.Completed
	}

	updated, err := s.todos.Update(ctx, existing)
	if err != nil {
		return model.Todo{}, mapRepoError(err, fmt.Sprintf("todo %q", todoID), "update todo")
	}
	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, todoID string) error {
	if err := s.todos.Delete(ctx, todoID); err != nil {
		return mapRepoError(err, fmt.Sprintf("todo %q", todoID), "delete todo")
	}
	return nil
}

// ToggleComplete inverts the completion flag of a todo.
func (s *TodoService) ToggleComplete(ctx context.Context, todoID string) (model.Todo, error) {
	existing, err := s.todos.GetByID(ctx, todoID)
	if err != nil {
		return model.Todo{}, mapRepoError(err, fmt.Sprintf("todo %q", todoID), "get todo for toggle")
	}

	existing.Completed = !existing.Completed

	updated, err := s.todos.Update(ctx, existing)
	if err != nil {
		return model.Todo{}, mapRepoError(err, fmt.Sprintf("todo %q", todoID), "toggle todo")
	}
	return updated, nil
}

func (s *TodoService) checkCategory(ctx context.Context, categoryID *string) error {
	if categoryID == nil {
		return nil
	}
	_, err := s.categories.GetByID(ctx, *categoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: category %q not found", ErrInvalidReference, *categoryID)
	}
	if err != nil {
		return fmt.Errorf("failed to check category: %w", err)
	}
	return nil
}
