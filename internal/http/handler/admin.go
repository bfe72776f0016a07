package handler

import "net/http"

// Resetter restores a store to its seed data.
type Resetter interface {
	Reset()
}

// ResetHandler serves POST /api/admin/reset.
type ResetHandler struct {
	store Resetter
}

func NewResetHandler(store Resetter) *ResetHandler {
	return &ResetHandler{store: store}
}

func (h *ResetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}

	h.store.Reset()
	w.WriteHeader(http.StatusNoContent)
}
