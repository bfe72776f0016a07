package service

import (
	"context"
	"fmt"

	"github.com/jaekwang-park/todo-board/internal/model"
	"github.com/jaekwang-park/todo-board/internal/repository"
	"github.com/jaekwang-park/todo-board/internal/validation"
)

type CreateCategoryInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"required"`
	Icon  string `json:"icon"`
}

type UpdateCategoryInput struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Color *string `json:"color" validate:"omitempty,min=1"`
	// An empty icon removes it.
	Icon *string `json:"icon"`
}

type CategoryService struct {
	repo      repository.CategoryRepository
	validator *validation.Validator
}

func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo, validator: validation.New()}
}

func (s *CategoryService) Create(ctx context.Context, input CreateCategoryInput) (model.Category, error) {
	if err := s.validator.Check(input).Err(); err != nil {
		return model.Category{}, err
	}

	created, err := s.repo.Create(ctx, model.Category{
		Name:  input.Name,
		Color: input.Color,
		Icon:  input.Icon,
	})
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

func (s *CategoryService) GetByID(ctx context.Context, categoryID string) (model.Category, error) {
	category, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		return model.Category{}, mapRepoError(err, fmt.Sprintf("category %q", categoryID), "get category")
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Update(ctx context.Context, categoryID string, input UpdateCategoryInput) (model.Category, error) {
	if err := s.validator.Check(input).Err(); err != nil {
		return model.Category{}, err
	}

	existing, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		return model.Category{}, mapRepoError(err, fmt.Sprintf("category %q", categoryID), "get category for update")
	}

	if input.Name != nil {
		existing.Name = *input.Name
	}
	if input.Color != nil {
		existing.Color = *input.Color
	}
	if input.Icon != nil {
		existing.Icon = *input.Icon
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return model.Category{}, mapRepoError(err, fmt.Sprintf("category %q", categoryID), "update category")
	}
	return updated, nil
}

// Delete removes the category and clears it from every todo that referenced it.
func (s *CategoryService) Delete(ctx context.Context, categoryID string) error {
	if err := s.repo.Delete(ctx, categoryID); err != nil {
		return mapRepoError(err, fmt.Sprintf("category %q", categoryID), "delete category")
	}
	return nil
}
