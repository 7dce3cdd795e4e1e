package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusapi/backend/internal/api/util"
)

// Requests that fail decoding or validation are rejected before any store
// access, so a handler with a nil service is enough to exercise them.

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) util.JSONError {
	t.Helper()
	var body util.JSONError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateUser_MalformedBody(t *testing.T) {
	h := &DirectoryHandler{}
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"id":`))
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, "Invalid request body", body.Message)
}

func TestCreateUser_MissingFields(t *testing.T) {
	h := &DirectoryHandler{}
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"id":"U1","username":"jdoe"}`))
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Contains(t, body.Message, "password is required")
	assert.Contains(t, body.Message, "role is required")
}

func TestCreateUser_InvalidRole(t *testing.T) {
	h := &DirectoryHandler{}
	payload := `{"id":"U1","username":"jdoe","password":"x","role":"principal","name":"Jane","email":"j@campus.edu"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	h.CreateUser(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Contains(t, body.Message, "role must be one of")
}

func TestLogin_MissingPassword(t *testing.T) {
	h := &AuthHandler{}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"ai"}`))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Contains(t, body.Message, "password is required")
}

func TestRegisterForEvent_MissingUserID(t *testing.T) {
	h := &CampusLifeHandler{}
	req := httptest.NewRequest(http.MethodPost, "/api/events/E1/register", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.RegisterForEvent(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Contains(t, body.Message, "user_id is required")
}

func TestToggleVote_MalformedBody(t *testing.T) {
	h := &CampusLifeHandler{}
	req := httptest.NewRequest(http.MethodPost, "/api/complaints/C1/vote", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()

	h.ToggleVote(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "Invalid request body", body.Message)
}

func TestWaiveAttendance_MissingSubjectCode(t *testing.T) {
	h := &AcademicsHandler{}
	req := httptest.NewRequest(http.MethodPost, "/api/attendance/waive", strings.NewReader(`{"student_id":"S123"}`))
	rec := httptest.NewRecorder()

	h.WaiveAttendance(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Contains(t, body.Message, "subject_code is required")
}

func TestCreateGrade_MissingSubjectCode(t *testing.T) {
	h := &AcademicsHandler{}
	payload := `{"id":"G1","student_id":"S123","student_name":"Jane","subject":"DB","part_a_marks":15,"part_b_marks":30,"total_marks":45,"grade":"A"}`
	req := httptest.NewRequest(http.MethodPost, "/api/grades", strings.NewReader(payload))
	rec := httptest.NewRecorder()

	h.CreateGrade(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Contains(t, body.Message, "subject_code is required")
}

func TestRoot(t *testing.T) {
	h := &AdminHandler{}
	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	rec := httptest.NewRecorder()

	h.Root(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "College Campus API", body["message"])
}
