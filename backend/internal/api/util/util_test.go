package util

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusapi/backend/internal/shared"
)

func TestWriteJSON_BarePayload(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, http.StatusOK, []shared.User{{ID: "U1"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var users []shared.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "U1", users[0].ID)
}

func TestHandleServiceError_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleServiceError(rec, shared.NewNotFound("Complaint"))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body JSONError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Complaint not found", body.Message)
}

func TestHandleServiceError_Validation(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleServiceError(rec, &shared.RequestValidationError{Fields: []string{"id is required"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body JSONError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "id is required")
}

func TestHandleServiceError_Internal(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleServiceError(rec, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body JSONError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	// Store errors never leak to clients.
	assert.Equal(t, "Internal server error", body.Message)
}

func TestDecodeJSON_IgnoresUnknownFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"user_id":"S123","extra":"ignored"}`))

	var body shared.UserIDRequest
	require.NoError(t, DecodeJSON(req, &body))
	assert.Equal(t, "S123", body.UserID)
}

func TestDecodeJSON_Malformed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"user_id":`))

	var body shared.UserIDRequest
	assert.Error(t, DecodeJSON(req, &body))
}
