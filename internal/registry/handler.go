// internal/registry/handler.go
package registry

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"playroster/pkg/httputil"
	"playroster/pkg/rejection"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the catalog endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/items", h.handleListItems)
	r.Post("/items", h.handleAddItem)
	r.Get("/items/{name}", h.handleGetItem)
}

func (h *Handler) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, rejection.New(rejection.KindInvalidInput, "invalid request body"))
		return
	}

	item, err := h.service.AddItem(r.Context(), req.Name)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) handleGetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.GetItem(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, item)
}
