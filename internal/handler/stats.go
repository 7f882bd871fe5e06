package handler

import (
	"net/http"

	"github.com/passcheck/passcheck-go/internal/repository"
)

// StatsHandler handles HTTP requests for evaluation statistics.
type StatsHandler struct {
	repo *repository.StatsRepository
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(repo *repository.StatsRepository) *StatsHandler {
	return &StatsHandler{repo: repo}
}

// HandleStats handles GET /api/v1/stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.repo.Summary(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
