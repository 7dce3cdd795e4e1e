package handlers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campusapi/backend/internal/api/util"
	"campusapi/backend/internal/campuslife"
	"campusapi/backend/internal/shared"
)

// CampusLifeHandler exposes event, complaint, library and notice endpoints.
type CampusLifeHandler struct {
	CampusLife *campuslife.Service
}

// ============================================================================
// Events
// ============================================================================

// ListEvents handles GET /events.
func (h *CampusLifeHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.CampusLife.ListEvents(r.Context())
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, events)
}

// CreateEvent handles POST /events.
func (h *CampusLifeHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event shared.Event
	if err := util.DecodeJSON(r, &event); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&event); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.CampusLife.CreateEvent(r.Context(), &event); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, event)
}

// UpdateEvent handles PUT /events/{id}.
func (h *CampusLifeHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var event shared.Event
	if err := util.DecodeJSON(r, &event); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&event); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.CampusLife.UpdateEvent(r.Context(), id, &event); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, event)
}

// RegisterForEvent handles POST /events/{id}/register. Registering an already
// registered user succeeds without a second entry.
func (h *CampusLifeHandler) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req shared.UserIDRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&req); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.CampusLife.RegisterForEvent(r.Context(), id, req.UserID); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, shared.StatusResponse{Success: true, Message: "Registered for event"})
}

// ============================================================================
// Complaints
// ============================================================================

// ListComplaints handles GET /complaints.
func (h *CampusLifeHandler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.CampusLife.ListComplaints(r.Context())
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, complaints)
}

// GetComplaint handles GET /complaints/{id}; 404 when absent.
func (h *CampusLifeHandler) GetComplaint(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	complaint, err := h.CampusLife.GetComplaint(r.Context(), id)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, complaint)
}

// CreateComplaint handles POST /complaints.
func (h *CampusLifeHandler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	var complaint shared.Complaint
	if err := util.DecodeJSON(r, &complaint); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&complaint); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.CampusLife.CreateComplaint(r.Context(), &complaint); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, complaint)
}

// ToggleVote handles POST /complaints/{id}/vote. One call adds the caller's
// vote, a second call removes it.
func (h *CampusLifeHandler) ToggleVote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req shared.UserIDRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&req); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	action, err := h.CampusLife.ToggleVote(r.Context(), id, req.UserID)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, shared.VoteResponse{
		Success: true,
		Message: fmt.Sprintf("Vote %s", action),
		Action:  action,
	})
}

// ResolveComplaint handles PUT /complaints/{id}/resolve and returns the
// updated complaint.
func (h *CampusLifeHandler) ResolveComplaint(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req shared.ResolveRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	complaint, err := h.CampusLife.ResolveComplaint(r.Context(), id, req.Response)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, complaint)
}

// ============================================================================
// Library
// ============================================================================

// ListBooks handles GET /library.
func (h *CampusLifeHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.CampusLife.ListBooks(r.Context())
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, books)
}

// CreateBook handles POST /library.
func (h *CampusLifeHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var book shared.LibraryBook
	if err := util.DecodeJSON(r, &book); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&book); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.CampusLife.CreateBook(r.Context(), &book); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, book)
}

// UpdateBook handles PUT /library/{id}.
func (h *CampusLifeHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var book shared.LibraryBook
	if err := util.DecodeJSON(r, &book); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&book); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.CampusLife.UpdateBook(r.Context(), id, &book); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, book)
}

// ============================================================================
// Notices
// ============================================================================

// ListNotices handles GET /notices.
func (h *CampusLifeHandler) ListNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := h.CampusLife.ListNotices(r.Context())
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, notices)
}

// CreateNotice handles POST /notices.
func (h *CampusLifeHandler) CreateNotice(w http.ResponseWriter, r *http.Request) {
	var notice shared.Notice
	if err := util.DecodeJSON(r, &notice); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&notice); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	if err := h.CampusLife.CreateNotice(r.Context(), &notice); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, notice)
}

// DeleteNotice handles DELETE /notices/{id}. An absent id is still a success.
func (h *CampusLifeHandler) DeleteNotice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.CampusLife.DeleteNotice(r.Context(), id); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, shared.StatusResponse{Success: true, Message: "Notice deleted"})
}
