package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenStr, err := GenerateAccessToken(42, "mom@example.com", "owner")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if uint(claims["user_id"].(float64)) != 42 {
		t.Errorf("user_id = %v, want 42", claims["user_id"])
	}
	if claims["email"] != "mom@example.com" {
		t.Errorf("email = %v", claims["email"])
	}
	if claims["role"] != "owner" {
		t.Errorf("role = %v", claims["role"])
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")

	tokenStr, err := GenerateRefreshToken(7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	userID, err := ParseRefreshToken(tokenStr)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != 7 {
		t.Errorf("user id = %d, want 7", userID)
	}
}

func TestParseRefreshTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")

	if _, err := ParseRefreshToken("not.a.token"); err == nil {
		t.Error("expected an error for a garbage token")
	}
}
