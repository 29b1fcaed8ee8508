// Package rejection carries the typed business-rule rejections surfaced at
// the lifecycle engine boundary. Every precondition violation maps to a
// stable machine-readable kind; callers decide how to render it.
package rejection

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the stable machine-readable category of a rejection.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindForbidden    Kind = "forbidden"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindUnavailable  Kind = "storage_unavailable"
	KindInternal     Kind = "internal"
)

// Rejection is a typed error with a kind and a human-readable message.
type Rejection struct {
	Kind    Kind
	Message string
	cause   error
}

// New builds a rejection of the given kind.
func New(kind Kind, message string) *Rejection {
	return &Rejection{Kind: kind, Message: message}
}

// Newf builds a rejection with a formatted message.
func Newf(kind Kind, format string, args ...any) *Rejection {
	return &Rejection{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause to a rejection, typically a storage error.
func Wrap(kind Kind, message string, cause error) *Rejection {
	return &Rejection{Kind: kind, Message: message, cause: cause}
}

func (r *Rejection) Error() string {
	if r.cause != nil {
		return fmt.Sprintf("%s: %s: %v", r.Kind, r.Message, r.cause)
	}
	return fmt.Sprintf("%s: %s", r.Kind, r.Message)
}

func (r *Rejection) Unwrap() error { return r.cause }

// KindOf extracts the kind from an error chain. Non-rejection errors are
// classified as internal.
func KindOf(err error) Kind {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Kind
	}
	return KindInternal
}

// HasKind reports whether err carries the given kind.
func HasKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps a rejection kind to an HTTP status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
