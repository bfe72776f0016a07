package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jaekwang-park/todo-board/internal/model"
)

type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	CategoryID  *string `json:"categoryId,omitempty"`
	Completed   bool    `json:"completed,omitempty"`
}

// UpdateTodoRequest is a partial update. Only set fields are sent; a
// Nullable set to null clears the stored value.
type UpdateTodoRequest struct {
	Title       *string
	Description *string
	DueDate     model.Nullable[string]
	CategoryID  model.Nullable[string]
	Completed   *bool
}

func (r UpdateTodoRequest) MarshalJSON() ([]byte, error) {
	m := make(map[string]any)
	if r.Title != nil {
		m["title"] = *r.Title
	}
	if r.Description != nil {
		m["description"] = *r.Description
	}
	if r.DueDate.Set {
		m["dueDate"] = r.DueDate
	}
	if r.CategoryID.Set {
		m["categoryId"] = r.CategoryID
	}
	if r.Completed != nil {
		m["completed"] = *r.Completed
	}
	return json.Marshal(m)
}

func (c *Client) ListTodos(ctx context.Context) ([]model.Todo, error) {
	var out []model.Todo
	if err := c.do(ctx, http.MethodGet, "/api/todos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTodo(ctx context.Context, id string) (model.Todo, error) {
	var out model.Todo
	err := c.do(ctx, http.MethodGet, todoPath(id), nil, &out)
	return out, err
}

func (c *Client) CreateTodo(ctx context.Context, req CreateTodoRequest) (model.Todo, error) {
	var out model.Todo
	err := c.do(ctx, http.MethodPost, "/api/todos", req, &out)
	return out, err
}

func (c *Client) UpdateTodo(ctx context.Context, id string, req UpdateTodoRequest) (model.Todo, error) {
	var out model.Todo
	err := c.do(ctx, http.MethodPatch, todoPath(id), req, &out)
	return out, err
}

func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, todoPath(id), nil, nil)
}

func (c *Client) ToggleTodo(ctx context.Context, id string) (model.Todo, error) {
	var out model.Todo
	err := c.do(ctx, http.MethodPatch, todoPath(id)+"/toggle", nil, &out)
	return out, err
}
