package domain

import "errors"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrEmailExists = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUserNotFound = errors.New("user not found")
var ErrTokenInvalid = errors.New("invalid or expired token")

// User models a registered account. Email is stored lowercase and is unique
// across all users. PasswordHash holds the bcrypt digest, never the plaintext.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// ValidRole reports whether role is one of the recognised account roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// SessionClaims are the identity facts embedded in a verified token. They are
// reconstructed per request from the token and never stored server-side.
type SessionClaims struct {
	SubjectID string
	Email     string
	Role      string
}
