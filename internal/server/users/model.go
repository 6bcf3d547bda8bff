package users

import "time"

// User is the identity record. Username and Email are unique and immutable
// after creation; PasswordHash is a salted bcrypt hash and never leaves the
// service layer.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Public returns the fields safe to expose to clients.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username, Email: u.Email}
}

// PublicUser is the client-visible projection of a User.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
