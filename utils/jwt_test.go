package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "customer", "secret", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ParseToken(token, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected userId 42, got %d", claims.UserID)
	}
	if claims.Role != "customer" {
		t.Errorf("expected role customer, got %q", claims.Role)
	}
}

func TestParseTokenRejects(t *testing.T) {
	token, _ := GenerateToken(1, "customer", "secret", time.Hour)
	if _, err := ParseToken(token, "other-secret"); err == nil {
		t.Error("token verified with wrong secret")
	}

	expired, _ := GenerateToken(1, "customer", "secret", -time.Minute)
	if _, err := ParseToken(expired, "secret"); err == nil {
		t.Error("expired token accepted")
	}

	if _, err := ParseToken("not-a-token", "secret"); err == nil {
		t.Error("garbage accepted")
	}
}
