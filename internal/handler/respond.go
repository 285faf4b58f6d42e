package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/goalboard/goalboard/internal/repository"
	"github.com/goalboard/goalboard/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// respondError maps the service error kinds onto HTTP statuses. Rows outside
// the caller's visible scope surface as 404, never 403, so existence does not
// leak.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case service.IsValidation(err):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "permission denied"})
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case isNotFound(err):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrEmailAlreadyExists),
		errors.Is(err, repository.ErrDuplicateParticipant):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		slog.Error("request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrBoardNotFound) ||
		errors.Is(err, repository.ErrCategoryNotFound) ||
		errors.Is(err, repository.ErrGoalNotFound) ||
		errors.Is(err, repository.ErrCommentNotFound) ||
		errors.Is(err, repository.ErrParticipantNotFound) ||
		errors.Is(err, repository.ErrUserNotFound)
}

// decodeJSON reads a request body into v, rejecting unknown fields
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func respondBadRequest(w http.ResponseWriter, msg string) {
	respondJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
