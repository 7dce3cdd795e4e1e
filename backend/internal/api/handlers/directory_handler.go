package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusapi/backend/internal/api/util"
	"campusapi/backend/internal/directory"
	"campusapi/backend/internal/shared"
)

// DirectoryHandler exposes user and student endpoints.
type DirectoryHandler struct {
	Directory *directory.Service
}

// ============================================================================
// Users
// ============================================================================

// ListUsers handles GET /users.
func (h *DirectoryHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Directory.ListUsers(r.Context())
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /users. The record is inserted as supplied;
// duplicate ids are not checked.
func (h *DirectoryHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user shared.User
	if err := util.DecodeJSON(r, &user); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&user); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.Directory.CreateUser(r.Context(), &user); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, user)
}

// UpdateUser handles PUT /users/{id}. The input record is echoed back even
// when the id matched nothing; callers cannot tell the two apart.
func (h *DirectoryHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var user shared.User
	if err := util.DecodeJSON(r, &user); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&user); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.Directory.UpdateUser(r.Context(), id, &user); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /users/{id}. An absent id is still a success.
func (h *DirectoryHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Directory.DeleteUser(r.Context(), id); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, shared.StatusResponse{Success: true, Message: "User deleted"})
}

// ============================================================================
// Students
// ============================================================================

// ListStudents handles GET /students.
func (h *DirectoryHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.Directory.ListStudents(r.Context())
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, students)
}

// GetStudent handles GET /students/{id}; 404 when absent.
func (h *DirectoryHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	student, err := h.Directory.GetStudent(r.Context(), id)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, student)
}

// CreateStudent handles POST /students.
func (h *DirectoryHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var student shared.Student
	if err := util.DecodeJSON(r, &student); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&student); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.Directory.CreateStudent(r.Context(), &student); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, student)
}

// UpdateStudent handles PUT /students/{id}.
func (h *DirectoryHandler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var student shared.Student
	if err := util.DecodeJSON(r, &student); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&student); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.Directory.UpdateStudent(r.Context(), id, &student); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, student)
}
