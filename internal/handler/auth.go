package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/goalboard/goalboard/internal/ctxkeys"
	"github.com/goalboard/goalboard/internal/model"
	"github.com/goalboard/goalboard/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	user, err := h.authService.Register(req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	if !h.issueSession(w, user) {
		return
	}

	respondJSON(w, http.StatusCreated, toUserResponse(user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	err := decodeJSON(r, &req)
	if err != nil {
		respondBadRequest(w, "invalid request body")
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	if !h.issueSession(w, user) {
		return
	}

	respondJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	respondJSON(w, http.StatusNoContent, nil)
}

// Me returns the authenticated caller
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	respondJSON(w, http.StatusOK, toUserResponse(user))
}

// issueSession signs a JWT for the user and sets the session cookie. It
// reports false after writing an error response on failure.
func (h *AuthHandler) issueSession(w http.ResponseWriter, user *model.User) bool {
	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to sign session token", "error", err, "user_id", user.ID)
		respondError(w, err)
		return false
	}

	h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))
	return true
}
