package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Ali-Askari-01/AI-Marketing-Assistant-sub001/pkg/autotag/internalerr"
)

// httpError writes the single error shape every handler uses:
// {"error": {"code": ..., "message": ...}}.
func httpError(w http.ResponseWriter, status int, code, format string, args ...any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": fmt.Sprintf(format, args...),
		},
	})
}

// errStatus maps the sentinel errors to HTTP statuses. Anything
// unrecognized is a 500.
func errStatus(err error) (int, string) {
	switch {
	case errors.Is(err, internalerr.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, internalerr.ErrInvalidInput), errors.Is(err, internalerr.ErrInvalidConfig):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, internalerr.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "store_unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
