package handlers

import (
	"net/http"

	"campusapi/backend/internal/admin"
	"campusapi/backend/internal/api/util"
	"campusapi/backend/internal/shared"
)

// AdminHandler exposes operational endpoints.
type AdminHandler struct {
	Admin *admin.Service
}

// Root handles GET /api/, a liveness banner.
func (h *AdminHandler) Root(w http.ResponseWriter, r *http.Request) {
	util.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "College Campus API",
	})
}

// ResetDemoData handles POST /reset-demo-data. All collections are dropped
// and re-seeded from the bundled fixture.
func (h *AdminHandler) ResetDemoData(w http.ResponseWriter, r *http.Request) {
	if err := h.Admin.ResetDemoData(r.Context()); err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, shared.StatusResponse{Success: true, Message: "Demo data reset successfully"})
}

// Stats handles GET /admin/stats with per-collection document counts.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Admin.CollectionStats(r.Context())
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}
	util.WriteJSON(w, http.StatusOK, stats)
}
