package util

import (
	"testing"
	"time"
)

const testSecret = "test-secret-test-secret-test-secret"

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("u1", "Aditya", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != "u1" || claims.DisplayName != "Aditya" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("u1", "Aditya", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := ParseJWT(token, "another-secret-another-secret-xx"); err == nil {
		t.Error("expected parse to fail with the wrong secret")
	}
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT("u1", "Aditya", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := ParseJWT(token, testSecret); err == nil {
		t.Error("expected parse to fail for an expired token")
	}
}
