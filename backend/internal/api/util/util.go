// Package util holds the JSON response helpers shared by every handler.
package util

import (
	"encoding/json"
	"net/http"

	"campusapi/backend/internal/shared"
)

// JSONError is the standard error envelope.
type JSONError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteJSON writes the payload as-is. Entity and list endpoints return bare
// records; status-style endpoints pass their own {success, message} shapes.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteJSONError writes a standardized {success:false, message} error body.
func WriteJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(JSONError{Success: false, Message: message})
}

// HandleServiceError maps service-layer errors to HTTP responses: NotFound
// becomes 404 with the entity name in the message, validation failures become
// 400, everything else is a 500.
func HandleServiceError(w http.ResponseWriter, err error) {
	switch {
	case shared.IsNotFound(err):
		WriteJSONError(w, http.StatusNotFound, err.Error())
	case shared.IsValidationError(err):
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	default:
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// DecodeJSON parses a request body into dst. Unknown fields are ignored,
// matching the permissive input contract.
func DecodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
