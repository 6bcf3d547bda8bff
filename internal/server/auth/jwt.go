// Package auth implements the session-token and password primitives:
// HS256 JWT issue/verify and bcrypt hashing with the registration
// password policy.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/studytrack/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims plus the owning user's id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// GenerateToken mints a signed token for userID expiring after
// validityDuration. An empty secret is a server misconfiguration, not a
// client error.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	if len(secretKey) == 0 {
		return "", common.ErrorConfiguration
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetUserIDFromToken validates signature and expiry and returns the embedded
// user id. Expired tokens map to common.ErrTokenExpired, everything else
// invalid to common.ErrInvalidToken. An empty secret is refused outright:
// HS256 verification against an empty key would accept tokens anyone can
// forge, so it maps to common.ErrorConfiguration like on the issuing side.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	if len(secretKey) == 0 {
		return "", common.ErrorConfiguration
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return secretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
