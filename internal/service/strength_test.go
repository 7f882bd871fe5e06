package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/passcheck/passcheck-go/internal/model"
	"github.com/passcheck/passcheck-go/internal/strength"
)

type fakeRecorder struct {
	ratings []string
	scores  []int
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, rating string, score int) error {
	if f.err != nil {
		return f.err
	}
	f.ratings = append(f.ratings, rating)
	f.scores = append(f.scores, score)
	return nil
}

func TestEvaluate_NoRecorder(t *testing.T) {
	svc := NewStrengthService(nil)

	resp := svc.Evaluate(context.Background(), model.EvaluateRequest{Password: "Passw0rd!"})
	if resp.Score != 4 {
		t.Errorf("expected score 4, got %d", resp.Score)
	}
	if resp.Rating != strength.RatingStrong {
		t.Errorf("expected rating %q, got %q", strength.RatingStrong, resp.Rating)
	}
}

func TestEvaluate_RecordsOutcome(t *testing.T) {
	rec := &fakeRecorder{}
	svc := NewStrengthService(rec)

	svc.Evaluate(context.Background(), model.EvaluateRequest{Password: ""})

	if !reflect.DeepEqual(rec.ratings, []string{strength.RatingWeak}) {
		t.Errorf("recorded ratings = %q, want [%q]", rec.ratings, strength.RatingWeak)
	}
	if !reflect.DeepEqual(rec.scores, []int{0}) {
		t.Errorf("recorded scores = %v, want [0]", rec.scores)
	}
}

func TestEvaluate_RecorderFailureIsSwallowed(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("db down")}
	svc := NewStrengthService(rec)

	resp := svc.Evaluate(context.Background(), model.EvaluateRequest{Password: "Passw0rd!"})
	if resp.Score != 4 {
		t.Errorf("expected score 4 despite recorder failure, got %d", resp.Score)
	}
}

func TestEvaluate_EmptyPassword(t *testing.T) {
	svc := NewStrengthService(nil)

	resp := svc.Evaluate(context.Background(), model.EvaluateRequest{})
	if resp.Score != 0 {
		t.Errorf("expected score 0, got %d", resp.Score)
	}
	if resp.Rating != strength.RatingWeak {
		t.Errorf("expected rating %q, got %q", strength.RatingWeak, resp.Rating)
	}
	if len(resp.Feedback) != 5 {
		t.Errorf("expected 5 feedback lines, got %d", len(resp.Feedback))
	}
}
