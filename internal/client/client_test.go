package client_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaekwang-park/todo-board/internal/client"
	todohttp "github.com/jaekwang-park/todo-board/internal/http"
	"github.com/jaekwang-park/todo-board/internal/model"
	"github.com/jaekwang-park/todo-board/internal/repository"
	"github.com/jaekwang-park/todo-board/internal/service"
)

// newAPI starts the real router over a seeded memory store.
func newAPI(t *testing.T) *client.Client {
	t.Helper()
	store := repository.NewMemoryStore()
	router := todohttp.NewRouter(todohttp.RouterDeps{
		Todos:      service.NewTodoService(store.Todos(), store.Categories()),
		Categories: service.NewCategoryService(store.Categories()),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return client.New(srv.URL+"/", client.WithHTTPClient(srv.Client()))
}

func strPtr(s string) *string { return &s }

func TestClient_Health(t *testing.T) {
	c := newAPI(t)

	health, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.NotEmpty(t, health.Timestamp)
}

func TestClient_TodoLifecycle(t *testing.T) {
	c := newAPI(t)
	ctx := context.Background()

	todos, err := c.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 5)

	created, err := c.CreateTodo(ctx, client.CreateTodoRequest{
		Title:      "Write report",
		DueDate:    strPtr("2025-06-15"),
		CategoryID: strPtr("cat-work"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2025-06-15", created.DueDate.String())
	assert.True(t, created.HasCategory("cat-work"))

	got, err := c.GetTodo(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)

	title := "Write final report"
	updated, err := c.UpdateTodo(ctx, created.ID, client.UpdateTodoRequest{
		Title:      &title,
		CategoryID: model.Null[string](),
	})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Nil(t, updated.CategoryID)
	assert.NotNil(t, updated.DueDate, "absent dueDate must be preserved")

	toggled, err := c.ToggleTodo(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	require.NoError(t, c.DeleteTodo(ctx, created.ID))

	_, err = c.GetTodo(ctx, created.ID)
	assert.True(t, client.IsNotFound(err))
}

func TestClient_CategoryLifecycle(t *testing.T) {
	c := newAPI(t)
	ctx := context.Background()

	created, err := c.CreateCategory(ctx, client.CreateCategoryRequest{Name: "Errands", Color: "#ff8800"})
	require.NoError(t, err)

	icon := "cart"
	updated, err := c.UpdateCategory(ctx, created.ID, client.UpdateCategoryRequest{Icon: &icon})
	require.NoError(t, err)
	assert.Equal(t, "cart", updated.Icon)
	assert.Equal(t, "Errands", updated.Name)

	got, err := c.GetCategory(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	categories, err := c.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 5)

	require.NoError(t, c.DeleteCategory(ctx, "cat-work"))

	todos, err := c.ListTodos(ctx)
	require.NoError(t, err)
	for _, todo := range todos {
		assert.False(t, todo.HasCategory("cat-work"), "todo %s still references deleted category", todo.ID)
	}
}

func TestClient_APIErrors(t *testing.T) {
	c := newAPI(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		call       func() error
		wantStatus int
		wantCode   string
	}{
		{
			name: "validation",
			call: func() error {
				_, err := c.CreateTodo(ctx, client.CreateTodoRequest{Title: ""})
				return err
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name: "reference",
			call: func() error {
				_, err := c.CreateTodo(ctx, client.CreateTodoRequest{Title: "x", CategoryID: strPtr("cat-nowhere")})
				return err
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name: "not found",
			call: func() error {
				_, err := c.ToggleTodo(ctx, "nonexistent")
				return err
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()

			var apiErr *client.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantStatus, apiErr.Status)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
}

func TestClient_ValidationDetails(t *testing.T) {
	c := newAPI(t)

	_, err := c.CreateCategory(context.Background(), client.CreateCategoryRequest{})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Details, "name")
	assert.Contains(t, apiErr.Details, "color")
}

func TestClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := client.New(srv.URL).ListTodos(context.Background())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, "HTTP_ERROR", apiErr.Code)
}

func TestClient_SendsToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, "[]")
	}))
	t.Cleanup(srv.Close)

	todos, err := client.New(srv.URL, client.WithToken("secret")).ListTodos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)
	assert.Equal(t, "Bearer secret", gotAuth)
}

func TestUpdateTodoRequest_MarshalJSON(t *testing.T) {
	done := true
	tests := []struct {
		name string
		req  client.UpdateTodoRequest
		want string
	}{
		{"empty", client.UpdateTodoRequest{}, `{}`},
		{"null category", client.UpdateTodoRequest{CategoryID: model.Null[string]()}, `{"categoryId":null}`},
		{"values", client.UpdateTodoRequest{DueDate: model.Some("2025-01-02"), Completed: &done}, `{"completed":true,"dueDate":"2025-01-02"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.req)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}
