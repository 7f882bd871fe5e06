package service

import (
	"context"
	"log/slog"

	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/strength"
)

// StatsRecorder persists evaluation outcomes. Implementations must not be
// handed the password itself.
type StatsRecorder interface {
	Record(ctx context.Context, rating string, score int) error
}

// StrengthService handles password evaluation business logic.
type StrengthService struct {
	recorder StatsRecorder
}

// NewStrengthService creates a new StrengthService. recorder may be nil, in
// which case outcomes are not recorded.
func NewStrengthService(recorder StatsRecorder) *StrengthService {
	return &StrengthService{recorder: recorder}
}

// Evaluate scores the candidate password. Recording the outcome is best
// effort: a failed insert is logged and never surfaced to the caller.
func (s *StrengthService) Evaluate(ctx context.Context, req model.EvaluateRequest) model.EvaluateResponse {
	report := strength.Evaluate(req.Password)

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, report.Rating, report.Score); err != nil {
			slog.Warn("recording evaluation outcome failed", "error", err)
		}
	}

	return model.EvaluateResponse{
		Rating:   report.Rating,
		Score:    report.Score,
		Feedback: report.Feedback,
	}
}
