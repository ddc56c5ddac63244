package services

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("pass123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("hash format = %q, want argon2id", hash)
	}
	if !VerifyPassword("pass123", hash) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("pass123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := HashPassword("pass123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same password must differ")
	}
}

func TestVerifyPasswordBcryptFallback(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	if !VerifyPassword("pass123", string(hash)) {
		t.Fatal("bcrypt hash rejected")
	}
	if VerifyPassword("wrong", string(hash)) {
		t.Fatal("wrong password accepted against bcrypt hash")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if VerifyPassword("pass123", "$argon2id$broken") {
		t.Fatal("malformed hash must not verify")
	}
}
