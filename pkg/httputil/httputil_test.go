package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"playroster/pkg/rejection"
)

func TestWriteErrorInternalOmitsDescription(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("db failed"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error"] != "internal" {
		t.Fatalf("expected error kind internal, got %q", body["error"])
	}
	if _, ok := body["error_description"]; ok {
		t.Fatalf("expected error_description to be omitted for internal errors")
	}
}

func TestWriteErrorConflictIncludesDescription(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, rejection.New(rejection.KindConflict, "child already has an item"))

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["error"] != "conflict" {
		t.Fatalf("expected error kind conflict, got %q", body["error"])
	}
	if body["error_description"] != "child already has an item" {
		t.Fatalf("unexpected description %q", body["error_description"])
	}
}
