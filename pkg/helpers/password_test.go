package helpers

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("Abc123!")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "Abc123!" {
		t.Fatalf("hash equals plain text")
	}

	if err := ComparePassword(hash, "Abc123!"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}

	err = ComparePassword(hash, "Xyz789!")
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Fatalf("expected mismatch error, got %v", err)
	}
}

func TestComparePassword_InvalidHash(t *testing.T) {
	t.Parallel()

	err := ComparePassword("not-a-bcrypt-hash", "whatever")
	if err == nil {
		t.Fatalf("expected error for malformed hash, got nil")
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Fatalf("malformed hash should not report a plain mismatch")
	}
}
