package handlers

import (
	"net/http"

	"campusapi/backend/internal/api/util"
	"campusapi/backend/internal/auth"
	"campusapi/backend/internal/shared"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	Auth *auth.Service
}

// Login handles POST /auth/login.
// Bad credentials are a 200 with success=false, never a protocol error.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req shared.LoginRequest
	if err := util.DecodeJSON(r, &req); err != nil {
		util.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := shared.Validate(&req); err != nil {
		util.HandleServiceError(w, err)
		return
	}

	resp, err := h.Auth.Login(r.Context(), &req)
	if err != nil {
		util.HandleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, resp)
}
