// Package session keeps the CLI's in-memory authentication state.
// The token lives only for the lifetime of the process; nothing is
// written to disk.
package session

import "github.com/dmitrijs2005/studytrack/internal/client/api"

// Session holds the JWT and the account it belongs to after a successful
// login. A zero Session means "not logged in".
type Session struct {
	Token string
	User  api.User
}

func (s *Session) IsLoggedIn() bool {
	return s.Token != ""
}

// Set replaces the current session with the given token and user.
func (s *Session) Set(token string, user api.User) {
	s.Token = token
	s.User = user
}

// Clear forgets the token and user, returning to the logged-out state.
func (s *Session) Clear() {
	s.Token = ""
	s.User = api.User{}
}
