package handler

import (
	"net/http"
	"strings"

	"github.com/jaekwang-park/todo-board/internal/service"
)

type CategoryHandler struct {
	svc *service.CategoryService
}

func NewCategoryHandler(svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// ServeHTTP routes /api/categories and /api/categories/{id}
func (h *CategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categoryID := strings.TrimPrefix(r.URL.Path, "/api/categories")
	categoryID = strings.TrimPrefix(categoryID, "/")

	if strings.Contains(categoryID, "/") {
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
		return
	}

	if categoryID != "" {
		switch r.Method {
		case http.MethodGet:
			h.handleGetByID(w, r, categoryID)
		case http.MethodPatch:
			h.handleUpdate(w, r, categoryID)
		case http.MethodDelete:
			h.handleDelete(w, r, categoryID)
		default:
			writeMethodNotAllowed(w)
		}
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		writeMethodNotAllowed(w)
	}
}

func (h *CategoryHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var input service.CreateCategoryInput
	if !decodeJSON(w, r, &input) {
		return
	}

	category, err := h.svc.Create(r.Context(), input)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusCreated, category)
}

func (h *CategoryHandler) handleList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.List(r.Context())
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) handleGetByID(w http.ResponseWriter, r *http.Request, categoryID string) {
	category, err := h.svc.GetByID(r.Context(), categoryID)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) handleUpdate(w http.ResponseWriter, r *http.Request, categoryID string) {
	var input service.UpdateCategoryInput
	if !decodeJSON(w, r, &input) {
		return
	}

	category, err := h.svc.Update(r.Context(), categoryID, input)
	if err != nil {
		WriteServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) handleDelete(w http.ResponseWriter, r *http.Request, categoryID string) {
	if err := h.svc.Delete(r.Context(), categoryID); err != nil {
		WriteServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
