package client

import (
	"context"
	"net/http"

	"github.com/jaekwang-park/todo-board/internal/model"
)

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
	Icon  *string `json:"icon,omitempty"`
}

func (c *Client) ListCategories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCategory(ctx context.Context, id string) (model.Category, error) {
	var out model.Category
	err := c.do(ctx, http.MethodGet, categoryPath(id), nil, &out)
	return out, err
}

func (c *Client) CreateCategory(ctx context.Context, req CreateCategoryRequest) (model.Category, error) {
	var out model.Category
	err := c.do(ctx, http.MethodPost, "/api/categories", req, &out)
	return out, err
}

func (c *Client) UpdateCategory(ctx context.Context, id string, req UpdateCategoryRequest) (model.Category, error) {
	var out model.Category
	err := c.do(ctx, http.MethodPatch, categoryPath(id), req, &out)
	return out, err
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, categoryPath(id), nil, nil)
}
