package service

import (
	"errors"
	"testing"
	"time"

	"github.com/passcheck/passcheck-go/internal/crypto"
	"github.com/passcheck/passcheck-go/internal/model"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	hash, err := crypto.HashKey("test-api-key")
	if err != nil {
		t.Fatalf("HashKey() unexpected error: %v", err)
	}
	return NewAuthService(hash, "test-secret", time.Hour)
}

func TestIssueToken_Valid(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.IssueToken(model.TokenRequest{ClientID: "ci-pipeline", APIKey: "test-api-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := crypto.ValidateToken(resp.Token, "test-secret")
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.ClientID != "ci-pipeline" {
		t.Errorf("token ClientID = %q, want %q", claims.ClientID, "ci-pipeline")
	}
}

func TestIssueToken_WrongKey(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.IssueToken(model.TokenRequest{ClientID: "ci-pipeline", APIKey: "wrong-key"})
	if !errors.Is(err, ErrInvalidAPIKey) {
		t.Fatalf("expected ErrInvalidAPIKey, got %v", err)
	}
}

func TestIssueToken_EmptyClientID(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.IssueToken(model.TokenRequest{APIKey: "test-api-key"})
	if !errors.Is(err, ErrClientIDRequired) {
		t.Fatalf("expected ErrClientIDRequired, got %v", err)
	}
}

func TestIssueToken_EmptyAPIKey(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.IssueToken(model.TokenRequest{ClientID: "ci-pipeline"})
	if !errors.Is(err, ErrAPIKeyRequired) {
		t.Fatalf("expected ErrAPIKeyRequired, got %v", err)
	}
}
