// internal/lifecycle/handler.go
package lifecycle

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"playroster/internal/eventlog"
	"playroster/pkg/httputil"
	"playroster/pkg/rejection"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the event intent and loan endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/events", h.handleSubmitEvent)
	r.Post("/loan/take", h.handleTakeItem)
	r.Post("/loan/return", h.handleReturnItem)
}

func (h *Handler) handleSubmitEvent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChildID string `json:"child_id"`
		Type    string `json:"type"`
		Label   string `json:"label,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, rejection.New(rejection.KindInvalidInput, "invalid request body"))
		return
	}

	childID, err := uuid.Parse(req.ChildID)
	if err != nil {
		httputil.WriteError(w, rejection.New(rejection.KindInvalidInput, "invalid child ID"))
		return
	}

	event, err := h.service.SubmitEvent(r.Context(), childID, eventlog.Type(req.Type), req.Label)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, event)
}

func (h *Handler) handleTakeItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChildID  string `json:"child_id"`
		ItemName string `json:"item_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, rejection.New(rejection.KindInvalidInput, "invalid request body"))
		return
	}

	childID, err := uuid.Parse(req.ChildID)
	if err != nil {
		httputil.WriteError(w, rejection.New(rejection.KindInvalidInput, "invalid child ID"))
		return
	}

	child, err := h.service.TakeItem(r.Context(), childID, req.ItemName)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, child)
}

func (h *Handler) handleReturnItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChildID string `json:"child_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, rejection.New(rejection.KindInvalidInput, "invalid request body"))
		return
	}

	childID, err := uuid.Parse(req.ChildID)
	if err != nil {
		httputil.WriteError(w, rejection.New(rejection.KindInvalidInput, "invalid child ID"))
		return
	}

	child, err := h.service.ReturnItem(r.Context(), childID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, child)
}
