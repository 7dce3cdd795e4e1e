package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusapi/backend/internal/academics"
	"campusapi/backend/internal/api/util"
	"campusapi/backend/internal/shared"
)

// AcademicsHandler exposes grade, attendance, schedule and study material
// endpoints.
type AcademicsHandler struct {
	Academics *academics.Service
}

// ============================================================================
// Grades
// ============================================================================

// ListGrades handles GET /grades.
func (h *AcademicsHandler) ListGrades(w http.ResponseWriter, r *http.Request) {
	grades, err := h.Academics.ListGrades(r.Context(), "")
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, grades)
}

// ListStudentGrades handles GET /grades/{student_id}. An unknown student
// yields an empty list, not a 404.
func (h *AcademicsHandler) ListStudentGrades(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "student_id")

	grades, err := h.Academics.ListGrades(r.Context(), studentID)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, grades)
}

// CreateGrade handles POST /grades.
func (h *AcademicsHandler) CreateGrade(w http.ResponseWriter, r *http.Request) {
	var grade shared.Grade
	if err := util.DecodeJSON(r, &grade); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&grade); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.Academics.CreateGrade(r.Context(), &grade); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, grade)
}

// UpdateGrade handles PUT /grades/{id}.
func (h *AcademicsHandler) UpdateGrade(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var grade shared.Grade
	if err := util.DecodeJSON(r, &grade); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&grade); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.Academics.UpdateGrade(r.Context(), id, &grade); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, grade)
}

// ============================================================================
// Attendance
// ============================================================================

// ListAttendance handles GET /attendance.
func (h *AcademicsHandler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := h.Academics.ListAttendance(r.Context(), "")
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, records)
}

// ListStudentAttendance handles GET /attendance/{student_id}.
func (h *AcademicsHandler) ListStudentAttendance(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "student_id")

	records, err := h.Academics.ListAttendance(r.Context(), studentID)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, records)
}

// CreateAttendance handles POST /attendance.
func (h *AcademicsHandler) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var record shared.Attendance
	if err := util.DecodeJSON(r, &record); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&record); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.Academics.CreateAttendance(r.Context(), &record); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, record)
}

// WaiveAttendance handles POST /attendance/waive. The matched record is
// lifted to full attendance.
func (h *AcademicsHandler) WaiveAttendance(w http.ResponseWriter, r *http.Request) {
	var req shared.AttendanceWaiverRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&req); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.Academics.WaiveAttendance(r.Context(), req.StudentID, req.SubjectCode); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, shared.StatusResponse{Success: true, Message: "Attendance waived"})
}

// ============================================================================
// Schedules
// ============================================================================

// ListSchedules handles GET /schedules.
func (h *AcademicsHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.Academics.ListSchedules(r.Context(), "")
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, schedules)
}

// ListTeacherSchedules handles GET /schedules/teacher/{teacher_id}.
func (h *AcademicsHandler) ListTeacherSchedules(w http.ResponseWriter, r *http.Request) {
	teacherID := chi.URLParam(r, "teacher_id")

	schedules, err := h.Academics.ListSchedules(r.Context(), teacherID)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, schedules)
}

// CreateSchedule handles POST /schedules.
func (h *AcademicsHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var schedule shared.Schedule
	if err := util.DecodeJSON(r, &schedule); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&schedule); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.Academics.CreateSchedule(r.Context(), &schedule); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, schedule)
}

// UpdateSchedule handles PUT /schedules/{id}.
func (h *AcademicsHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var schedule shared.Schedule
	if err := util.DecodeJSON(r, &schedule); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&schedule); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.Academics.UpdateSchedule(r.Context(), id, &schedule); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, schedule)
}

// ============================================================================
// Study Materials
// ============================================================================

// ListMaterials handles GET /materials.
func (h *AcademicsHandler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	materials, err := h.Academics.ListMaterials(r.Context())
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, materials)
}

// CreateMaterial handles POST /materials.
func (h *AcademicsHandler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	var material shared.StudyMaterial
	if err := util.DecodeJSON(r, &material); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&material); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.Academics.CreateMaterial(r.Context(), &material); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, material)
}

// UpdateMaterial handles PUT /materials/{id}.
func (h *AcademicsHandler) UpdateMaterial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var material shared.StudyMaterial
	if err := util.DecodeJSON(r, &material); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&material); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.Academics.UpdateMaterial(r.Context(), id, &material); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, material)
}
