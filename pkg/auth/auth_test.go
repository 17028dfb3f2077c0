package auth

import (
	"testing"
	"time"

	apperrors "github.com/LeQuyetTien/vidly/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return signed
}

func TestVerify_ValidToken(t *testing.T) {
	v := NewVerifier(testSecret)
	token := signToken(t, testSecret, Claims{UserID: "507f1f77bcf86cd799439011", IsAdmin: true})

	identity, err := v.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.UserID != "507f1f77bcf86cd799439011" {
		t.Errorf("expected user id to round-trip, got %s", identity.UserID)
	}
	if !identity.IsAdmin {
		t.Errorf("expected admin flag to round-trip")
	}
}

func TestVerify_Rejections(t *testing.T) {
	v := NewVerifier(testSecret)

	expired := signToken(t, testSecret, Claims{
		UserID: "507f1f77bcf86cd799439011",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage token", "not-a-jwt"},
		{"wrong secret", signToken(t, "other-secret", Claims{UserID: "507f1f77bcf86cd799439011"})},
		{"expired token", expired},
		{"missing user id", signToken(t, testSecret, Claims{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(tt.token)
			if err == nil {
				t.Fatal("expected verification to fail")
			}
			appErr := apperrors.AsAppError(err)
			if appErr.Code != apperrors.CodeUnauthorized {
				t.Errorf("expected %s, got %s", apperrors.CodeUnauthorized, appErr.Code)
			}
		})
	}
}
