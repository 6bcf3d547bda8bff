package auth

import (
	"strings"

	"github.com/dmitrijs2005/studytrack/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches the work factor the service has always used; changing
// it only affects newly created hashes.
const BcryptCost = 10

// ValidatePassword enforces the registration policy: at least 8 characters
// and at least one digit. Runs before any hashing or persistence.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return common.ErrorWeakPassword
	}
	if !strings.ContainsAny(password, "0123456789") {
		return common.ErrorWeakPassword
	}
	return nil
}

// HashPassword derives a salted bcrypt hash from the plaintext.
// The plaintext must never be persisted or logged.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
// bcrypt's comparison is constant-time with respect to the hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
