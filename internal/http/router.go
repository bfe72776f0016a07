package http

import (
	"net/http"

	"github.com/jaekwang-park/todo-board/internal/http/handler"
	"github.com/jaekwang-park/todo-board/internal/service"
)

type RouterDeps struct {
	Todos      *service.TodoService
	Categories *service.CategoryService
	// Resetter enables POST /api/admin/reset when non-nil.
	Resetter handler.Resetter
}

func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check lives outside /api so it stays reachable without auth.
	mux.Handle("/health", handler.NewHealthHandler())

	todoHandler := handler.NewTodoHandler(deps.Todos)
	mux.Handle("/api/todos", todoHandler)
	mux.Handle("/api/todos/", todoHandler)

	categoryHandler := handler.NewCategoryHandler(deps.Categories)
	mux.Handle("/api/categories", categoryHandler)
	mux.Handle("/api/categories/", categoryHandler)

	if deps.Resetter != nil {
		mux.Handle("/api/admin/reset", handler.NewResetHandler(deps.Resetter))
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handler.WriteError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})

	return mux
}
