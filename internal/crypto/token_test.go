package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken("ci-pipeline", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty string")
	}
}

func TestValidateTokenValid(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateToken("ci-pipeline", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.ClientID != "ci-pipeline" {
		t.Errorf("ValidateToken() ClientID = %q, want %q", claims.ClientID, "ci-pipeline")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	_, err := ValidateToken("not-a-valid-token", "test-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for invalid token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("ci-pipeline", "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	_, err = ValidateToken(token, "wrong-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for wrong secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := GenerateToken("ci-pipeline", "test-secret", time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateToken(token, "test-secret")
	if err == nil {
		t.Error("ValidateToken() expected error for expired token")
	}
}

func TestValidateTokenWrongIssuer(t *testing.T) {
	secret := "test-secret"

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "wrong-issuer",
			Audience:  jwt.ClaimStrings{"passcheck-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		ClientID: "ci-pipeline",
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	if _, err = ValidateToken(tokenString, secret); err == nil {
		t.Error("ValidateToken() expected error for wrong issuer")
	}
}

func TestValidateTokenWrongAudience(t *testing.T) {
	secret := "test-secret"

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "passcheck",
			Audience:  jwt.ClaimStrings{"wrong-audience"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		ClientID: "ci-pipeline",
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	if _, err = ValidateToken(tokenString, secret); err == nil {
		t.Error("ValidateToken() expected error for wrong audience")
	}
}
