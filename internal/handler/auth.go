package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/service"
)

// AuthHandler handles HTTP requests for API token exchange.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleToken handles POST /api/v1/auth/token requests.
func (h *AuthHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	var req model.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.IssueToken(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientIDRequired), errors.Is(err, service.ErrAPIKeyRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidAPIKey):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
