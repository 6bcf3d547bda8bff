package auth

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/studytrack/internal/common"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantWeak bool
	}{
		{"ok", "abc12345", false},
		{"long with one digit", "longpassword1", false},
		{"too short", "ab1", true},
		{"seven chars with digit", "abcdef1", true},
		{"long but no digit", "abcdefghij", true},
		{"empty", "", true},
		{"digits only", "12345678", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.wantWeak {
				if !errors.Is(err, common.ErrorWeakPassword) {
					t.Fatalf("expected ErrorWeakPassword for %q, got %v", tc.password, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.password, err)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	const plain = "abc12345"

	hash, err := HashPassword(plain)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == plain {
		t.Fatalf("hash must not equal the plaintext")
	}

	if !CheckPassword(hash, plain) {
		t.Fatalf("correct password must verify")
	}
	if CheckPassword(hash, "wrong1234") {
		t.Fatalf("wrong password must not verify")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("abc12345")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("abc12345")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (per-hash salt)")
	}
}
