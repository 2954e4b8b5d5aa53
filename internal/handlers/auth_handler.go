package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"ukkm-backend/internal/auth"
	"ukkm-backend/internal/middleware"
	"ukkm-backend/internal/models"
	"ukkm-backend/pkg/utils"
)

type AuthHandler struct {
	Service *auth.SessionService
}

func NewAuthHandler(s *auth.SessionService) *AuthHandler {
	return &AuthHandler{Service: s}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.Service.Login(r.Context(), req)
	switch {
	case errors.Is(err, auth.ErrMissingCredential):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrIdentityDisabled):
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	case err != nil:
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

// Session handles GET /api/session. The auth middleware already restored it.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	profile, ok := middleware.GetProfileFromContext(r.Context())
	if !ok {
		http.Error(w, "No active session", http.StatusUnauthorized)
		return
	}
	utils.JSON(w, http.StatusOK, profile)
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := middleware.GetTokenFromContext(r.Context())
	if err := h.Service.Logout(r.Context(), token); err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
