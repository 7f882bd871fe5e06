package model

// TokenRequest represents an API key exchange request.
type TokenRequest struct {
	ClientID string `json:"client_id"`
	APIKey   string `json:"api_key"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}
