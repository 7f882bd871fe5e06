package service

import (
	"errors"
	"time"

	"github.com/passcheck/passcheck-go/internal/crypto"
	"github.com/passcheck/passcheck-go/internal/model"
)

var (
	ErrInvalidAPIKey    = errors.New("invalid api key")
	ErrClientIDRequired = errors.New("client_id is required")
	ErrAPIKeyRequired   = errors.New("api_key is required")
)

// AuthService exchanges the shared API key for short-lived bearer tokens.
// Only the Argon2id hash of the key is held; the plaintext never reaches the
// server's configuration.
type AuthService struct {
	apiKeyHash string
	jwtSecret  string
	jwtExpiry  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(apiKeyHash, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		apiKeyHash: apiKeyHash,
		jwtSecret:  jwtSecret,
		jwtExpiry:  jwtExpiry,
	}
}

// IssueToken verifies the presented API key and mints a JWT for the client.
func (s *AuthService) IssueToken(req model.TokenRequest) (model.TokenResponse, error) {
	if req.ClientID == "" {
		return model.TokenResponse{}, ErrClientIDRequired
	}
	if req.APIKey == "" {
		return model.TokenResponse{}, ErrAPIKeyRequired
	}

	match, err := crypto.VerifyKey(req.APIKey, s.apiKeyHash)
	if err != nil {
		return model.TokenResponse{}, err
	}
	if !match {
		return model.TokenResponse{}, ErrInvalidAPIKey
	}

	token, err := crypto.GenerateToken(req.ClientID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{Token: token}, nil
}
