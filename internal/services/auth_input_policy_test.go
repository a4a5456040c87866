package services

import (
	"errors"
	"testing"
)

func TestNormalizeAuthEmail(t *testing.T) {
	if email := NormalizeAuthEmail("  User@Example.COM "); email != "user@example.com" {
		t.Fatalf("expected user@example.com, got %q", email)
	}
	if email := NormalizeAuthEmail("not-an-email"); email != "" {
		t.Fatalf("expected empty string for invalid email, got %q", email)
	}
	if email := NormalizeAuthEmail("   "); email != "" {
		t.Fatalf("expected empty string for blank input, got %q", email)
	}
}

func TestNormalizeCredentialsInput(t *testing.T) {
	email, password, err := NormalizeCredentialsInput(" user@example.com ", " secret ")
	if err != nil {
		t.Fatalf("normalize credentials: %v", err)
	}
	if email != "user@example.com" || password != "secret" {
		t.Fatalf("unexpected normalization: %q %q", email, password)
	}

	if _, _, err := NormalizeCredentialsInput("broken", "secret"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid, got %v", err)
	}
	if _, _, err := NormalizeCredentialsInput("user@example.com", "   "); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for empty password, got %v", err)
	}
}
