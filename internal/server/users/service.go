// Package users implements the credential store: registration with the
// password policy and duplicate detection, and login with token issuance.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/studytrack/internal/common"
	"github.com/dmitrijs2005/studytrack/internal/server/auth"
	"github.com/dmitrijs2005/studytrack/internal/server/config"
	"github.com/google/uuid"
)

// LoginResult is what a successful login hands back to the transport:
// the signed session token and the public identity fields.
type LoginResult struct {
	Token string
	User  PublicUser
}

type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// Register validates the input, hashes the password and persists the new
// identity. Validation failures happen before any database interaction.
// The unique constraints on username and email are the final word on
// duplicates: a concurrent registration that slips past the pre-check
// still loses with common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, username, email, password string) (*User, error) {

	if username == "" || email == "" || password == "" {
		return nil, common.ErrorMissingField
	}

	if err := auth.ValidatePassword(password); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("error checking existing users: %w", err)
	}
	if exists {
		// Deliberately the same error for username and email collisions.
		return nil, common.ErrorAlreadyExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and mints a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {

	if email == "" || password == "" {
		return nil, common.ErrorMissingField
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, fmt.Errorf("%w: fetching user: %v", common.ErrorInternal, err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		if errors.Is(err, common.ErrorConfiguration) {
			return nil, common.ErrorConfiguration
		}
		return nil, fmt.Errorf("%w: minting token: %v", common.ErrorInternal, err)
	}

	return &LoginResult{Token: token, User: user.Public()}, nil
}
