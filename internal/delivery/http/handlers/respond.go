package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andromedanny/storefront-service/internal/domain"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// writeError maps domain sentinels onto the API error envelope. Callers
// branch on the machine-readable code; the message is for humans.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrStoreNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		writeJSON(w, http.StatusNotFound, errorEnvelope{errorBody{"NOT_FOUND", err.Error()}})
	case errors.Is(err, domain.ErrDuplicateDomain):
		writeJSON(w, http.StatusConflict, errorEnvelope{errorBody{"DUPLICATE_DOMAIN", err.Error()}})
	case errors.Is(err, domain.ErrInsufficientStock):
		writeJSON(w, http.StatusConflict, errorEnvelope{errorBody{"INSUFFICIENT_STOCK", err.Error()}})
	case errors.Is(err, domain.ErrInvalidDomain),
		errors.Is(err, domain.ErrInvalidContent),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorEnvelope{errorBody{"VALIDATION", err.Error()}})
	default:
		// upstream failures get a generic message, never internals
		writeJSON(w, http.StatusInternalServerError, errorEnvelope{errorBody{"INTERNAL", "something went wrong"}})
	}
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorEnvelope{errorBody{"VALIDATION", message}})
}
