package auth

import (
	"errors"
	"testing"
)

func TestJWTRoundTrip(t *testing.T) {
	j := NewJWT("test-secret-for-tokens")

	token, err := j.Generate(42, "user@example.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := j.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("userID = %d, want 42", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token, err := NewJWT("secret-a").Generate(1, "a@b.c")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := NewJWT("secret-b").Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTRejectsGarbage(t *testing.T) {
	j := NewJWT("secret")
	for _, bad := range []string{"", "not.a.token", "a.b"} {
		if _, err := j.Validate(bad); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(%q): expected ErrInvalidToken, got %v", bad, err)
		}
	}
}
