package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/poseform/formtrack/internal/common"
)

type messageResponse struct {
	Message string `json:"message"`
}

func jsonOK(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, message string, status int) {
	jsonOK(w, status, messageResponse{Message: message})
}

// jsonErrorFor maps sentinel errors onto the HTTP surface. Anything not in
// the taxonomy is reported as a generic server error with no detail.
func jsonErrorFor(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrMissingCredential),
		errors.Is(err, common.ErrInvalidCredential),
		errors.Is(err, common.ErrExpiredCredential),
		errors.Is(err, common.ErrInvalidLogin):
		jsonError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, common.ErrForbidden):
		jsonError(w, "Forbidden", http.StatusForbidden)
	case errors.Is(err, common.ErrValidation):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, common.ErrDuplicateEmail):
		jsonError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, common.ErrNotFound):
		jsonError(w, "Not found", http.StatusNotFound)
	default:
		jsonError(w, "Server error", http.StatusInternalServerError)
	}
}
