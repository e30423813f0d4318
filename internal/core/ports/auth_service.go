package ports

import (
	"context"

	"github.com/mockshop/commerce-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account. Email is
// normalized to lowercase by the service; Role defaults to "user" when empty.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token     string
	ExpiresIn string
	User      *domain.User
}

// AuthService defines the account use cases.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login collapses "no such user" and "wrong password" into the same
	// domain.ErrInvalidCredentials so account existence is never revealed.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// TokenVerifier validates a bearer token and returns its claims. Any
// structural defect, signature mismatch, or expiry yields the uniform
// domain.ErrTokenInvalid.
type TokenVerifier interface {
	Verify(token string) (*domain.SessionClaims, error)
}
