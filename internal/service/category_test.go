package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jaekwang-park/todo-board/internal/model"
	"github.com/jaekwang-park/todo-board/internal/repository"
	"github.com/jaekwang-park/todo-board/internal/service"
	"github.com/jaekwang-park/todo-board/internal/validation"
)

func TestCategoryCreate(t *testing.T) {
	tests := []struct {
		name       string
		input      service.CreateCategoryInput
		wantFields []string
	}{
		{
			name:  "success",
			input: service.CreateCategoryInput{Name: "Errands", Color: "#ff8800", Icon: "cart"},
		},
		{
			name:       "missing name and color",
			input:      service.CreateCategoryInput{},
			wantFields: []string{"name", "color"},
		},
		{
			name:       "name too long",
			input:      service.CreateCategoryInput{Name: strings.Repeat("n", 101), Color: "red"},
			wantFields: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCategoryRepo{
				createFn: func(ctx context.Context, category model.Category) (model.Category, error) {
					category.ID = "cat-new"
					return category, nil
				},
			}
			svc := service.NewCategoryService(repo)
			got, err := svc.Create(context.Background(), tt.input)

			if len(tt.wantFields) > 0 {
				var verr *validation.Error
				if !errors.As(err, &verr) {
					t.Fatalf("expected validation error, got %v", err)
				}
				if len(verr.Fields) != len(tt.wantFields) {
					t.Errorf("expected fields %v, got %v", tt.wantFields, verr.Fields)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != "cat-new" || got.Name != tt.input.Name || got.Icon != tt.input.Icon {
				t.Errorf("unexpected category %+v", got)
			}
		})
	}
}

func TestCategoryUpdate(t *testing.T) {
	name := "Office"
	emptyIcon := ""
	emptyColor := ""

	stored := model.Category{ID: "cat-work", Name: "Work", Color: "blue", Icon: "briefcase"}

	tests := []struct {
		name      string
		input     service.UpdateCategoryInput
		want      model.Category
		wantValid bool
	}{
		{
			name:      "rename",
			input:     service.UpdateCategoryInput{Name: &name},
			want:      model.Category{ID: "cat-work", Name: "Office", Color: "blue", Icon: "briefcase"},
			wantValid: true,
		},
		{
			name:      "clear icon",
			input:     service.UpdateCategoryInput{Icon: &emptyIcon},
			want:      model.Category{ID: "cat-work", Name: "Work", Color: "blue"},
			wantValid: true,
		},
		{
			name:  "empty color",
			input: service.UpdateCategoryInput{Color: &emptyColor},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCategoryRepo{
				getByIDFn: func(ctx context.Context, categoryID string) (model.Category, error) {
					return stored, nil
				},
				updateFn: func(ctx context.Context, category model.Category) (model.Category, error) {
					return category, nil
				},
			}
			svc := service.NewCategoryService(repo)
			got, err := svc.Update(context.Background(), "cat-work", tt.input)

			if !tt.wantValid {
				var verr *validation.Error
				if !errors.As(err, &verr) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestCategoryGetAndDelete_NotFound(t *testing.T) {
	repo := &mockCategoryRepo{
		getByIDFn: func(ctx context.Context, categoryID string) (model.Category, error) {
			return model.Category{}, repository.ErrNotFound
		},
		deleteFn: func(ctx context.Context, categoryID string) error {
			return repository.ErrNotFound
		},
	}
	svc := service.NewCategoryService(repo)

	if _, err := svc.GetByID(context.Background(), "cat-x"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected ErrNotFound from GetByID, got %v", err)
	}
	if err := svc.Delete(context.Background(), "cat-x"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("expected ErrNotFound from Delete, got %v", err)
	}
}

func TestCategoryDelete_Cascade(t *testing.T) {
	todos, categories := newMemoryServices(t)
	ctx := context.Background()

	other, err := categories.Create(ctx, service.CreateCategoryInput{Name: "Other", Color: "red"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := todos.Create(ctx, service.CreateTodoInput{Title: "a", CategoryID: strPtr("cat-work")})
	b, _ := todos.Create(ctx, service.CreateTodoInput{Title: "b", CategoryID: strPtr("cat-work")})
	c, _ := todos.Create(ctx, service.CreateTodoInput{Title: "c", CategoryID: strPtr(other.ID)})

	if err := categories.Delete(ctx, "cat-work"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, before := range []model.Todo{a, b} {
		after, err := todos.GetByID(ctx, before.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if after.CategoryID != nil {
			t.Errorf("todo %s: expected null category, got %s", before.ID, *after.CategoryID)
		}
		if !after.UpdatedAt.After(before.UpdatedAt) {
			t.Errorf("todo %s: expected updatedAt refreshed", before.ID)
		}
	}

	afterC, _ := todos.GetByID(ctx, c.ID)
	if !afterC.HasCategory(other.ID) || !afterC.UpdatedAt.Equal(c.UpdatedAt) {
		t.Errorf("expected todo referencing %s untouched, got %+v", other.ID, afterC)
	}

	list, _ := categories.List(ctx)
	for _, cat := range list {
		if cat.ID == "cat-work" {
			t.Error("expected cat-work removed")
		}
	}
}
