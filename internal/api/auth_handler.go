package api

import (
	"errors"
	"net/http"

	"github.com/codequiz/backend/internal/domain/user"
	"github.com/codequiz/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type SignupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
	IsGuest  bool   `json:"is_guest"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /auth/signup
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Password != req.ConfirmPassword {
		respondError(w, http.StatusBadRequest, "passwords do not match")
		return
	}

	err := h.auth.Signup(r.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrUsernameTaken) {
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, LoginResponse{Username: req.Username})
}

// POST /auth/login
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{Username: req.Username, Token: token})
}

// POST /auth/guest
func (h *Handler) guest(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, LoginResponse{Username: user.GuestName, IsGuest: true})
}
