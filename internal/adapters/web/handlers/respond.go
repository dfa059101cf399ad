package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/thermovote/thermovote/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Response encode error: %v", err)
	}
}

// writeError translates domain errors to the API taxonomy: validation
// failures map to 400, unknown zones to 404, everything else to a generic
// 500 with the detail kept server-side.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":  "validation_error",
			"field":  ve.Field,
			"detail": ve.Error(),
		})
	case errors.Is(err, domain.ErrZoneNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error":  "not_found",
			"detail": "zone not found",
		})
	default:
		log.Printf("Internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":  "internal_error",
			"detail": "unexpected server error",
		})
	}
}
