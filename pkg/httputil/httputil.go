// Package httputil holds small helpers shared by all HTTP handlers.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"playroster/pkg/rejection"
)

type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

// WriteJSON serializes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError renders a rejection as JSON. Internal and storage errors omit
// the description so infrastructure details never reach clients.
func WriteError(w http.ResponseWriter, err error) {
	kind := rejection.KindOf(err)
	body := errorBody{Error: string(kind)}

	switch kind {
	case rejection.KindInternal, rejection.KindUnavailable:
		// message withheld
	default:
		var r *rejection.Rejection
		if errors.As(err, &r) {
			body.Description = r.Message
		}
	}

	WriteJSON(w, rejection.HTTPStatus(err), body)
}
