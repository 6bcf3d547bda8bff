// Package services contains application services for the StudyTrack CLI.
// They sit between the interactive command layer and the HTTP API client.
package services

import (
	"context"

	"github.com/dmitrijs2005/studytrack/internal/client/api"
	"github.com/dmitrijs2005/studytrack/internal/client/session"
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Register: create a new account on the server.
//   - Login: authenticate and store the token in the session.
//   - Logout: drop the in-memory session.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, username, email string, password []byte) (string, error)
	Login(ctx context.Context, email string, password []byte) error
	Logout()
	Ping(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote API client
// and the process-local session.
type authService struct {
	client  api.Client
	session *session.Session
}

// NewAuthService constructs an AuthService bound to the given API client
// and session.
func NewAuthService(client api.Client, sess *session.Session) AuthService {
	return &authService{client: client, session: sess}
}

// Register creates a new account on the server and returns its id.
// Registration does not log the user in; a separate Login is required.
func (a *authService) Register(ctx context.Context, username, email string, password []byte) (string, error) {
	return a.client.Register(ctx, username, email, password)
}

// Login authenticates against the server and, on success, stores the
// returned token and user in the session.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	token, user, err := a.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	a.session.Set(token, user)
	return nil
}

// Logout clears the in-memory session. The server keeps no login state,
// so forgetting the token is all there is to it.
func (a *authService) Logout() {
	a.session.Clear()
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
