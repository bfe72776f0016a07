package handler

import (
	"net/http"
	"strings"

	"github.com/jaekwang-park/todo-board/internal/service"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// ServeHTTP routes /api/todos, /api/todos/{id} and /api/todos/{id}/toggle
func (h *TodoHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/todos")
	path = strings.TrimPrefix(path, "/")

	parts := strings.SplitN(path, "/", 2)
	todoID := parts[0]
	subPath := ""
	if len(parts) > 1 {
		subPath = parts[1]
	}

	// /api/todos/{id}/toggle
	if todoID != "" && subPath == "toggle" {
		if r.Method != http.MethodPatch {
			writeMethodNotAllowed(w)
			return
		}
		h.handleToggle(w, r, todoID)
		return
	}

	if subPath != "" {
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
		return
	}

	// /api/todos/{id}
	if todoID != "" {
		switch r.Method {
		case http.MethodGet:
			h.handleGetByID(w, r, todoID)
		case http.MethodPatch:
			h.handleUpdate(w, r, todoID)
		case http.MethodDelete:
			h.handleDelete(w, r, todoID)
		default:
			writeMethodNotAllowed(w)
		}
		return
	}

	// /api/todos
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		writeMethodNotAllowed(w)
	}
}

func (h *TodoHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var input service.CreateTodoInput
	if !decodeJSON(w, r, &input) {
		return
	}

	todo, err := h.svc.Create(r.Context(), input)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) handleList(w http.ResponseWriter, r *http.Request) {
	todos, err := h.svc.List(r.Context())
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) handleGetByID(w http.ResponseWriter, r *http.Request, todoID string) {
	todo, err := h.svc.GetByID(r.Context(), todoID)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) handleUpdate(w http.ResponseWriter, r *http.Request, todoID string) {
	var input service.UpdateTodoInput
	if !decodeJSON(w, r, &input) {
		return
	}

	todo, err := h.svc.Update(r.Context(), todoID, input)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) handleDelete(w http.ResponseWriter, r *http.Request, todoID string) {
	if err := h.svc.Delete(r.Context(), todoID); err != nil {
		WriteServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TodoHandler) handleToggle(w http.ResponseWriter, r *http.Request, todoID string) {
	todo, err := h.svc.ToggleComplete(r.Context(), todoID)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, todo)
}
