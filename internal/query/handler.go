// internal/query/handler.go
package query

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"playroster/pkg/httputil"
	"playroster/pkg/rejection"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the read-side endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/children", h.handleListChildren)
	r.Get("/children/public", h.handleListPublicChildren)
	r.Get("/children/{id}", h.handleGetChild)
	r.Get("/children/{id}/events", h.handleListEvents)
}

func (h *Handler) handleListChildren(w http.ResponseWriter, r *http.Request) {
	children, err := h.service.ListChildren(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, children)
}

func (h *Handler) handleListPublicChildren(w http.ResponseWriter, r *http.Request) {
	children, err := h.service.ListPublicChildren(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, children)
}

func (h *Handler) handleGetChild(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, rejection.New(rejection.KindInvalidInput, "invalid child ID"))
		return
	}

	detail, err := h.service.GetChild(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) handleListEvents(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, rejection.New(rejection.KindInvalidInput, "invalid child ID"))
		return
	}

	events, err := h.service.ListEvents(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, events)
}
