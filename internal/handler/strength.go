package handler

import (
	"encoding/json"
	"net/http"

	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/service"
)

// StrengthHandler handles HTTP requests for password evaluation.
type StrengthHandler struct {
	service *service.StrengthService
}

// NewStrengthHandler creates a new StrengthHandler.
func NewStrengthHandler(svc *service.StrengthService) *StrengthHandler {
	return &StrengthHandler{service: svc}
}

// HandleEvaluate handles POST /api/v1/evaluate requests. Any password is a
// valid input, including the empty string; evaluation itself cannot fail.
func (h *StrengthHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	var req model.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	writeJSON(w, http.StatusOK, h.service.Evaluate(r.Context(), req))
}
