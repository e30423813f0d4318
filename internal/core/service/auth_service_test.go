package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mockshop/commerce-api/internal/core/domain"
	"github.com/mockshop/commerce-api/internal/core/ports"
	"github.com/mockshop/commerce-api/internal/infrastructure/db/memory"
)

func newAuthService() *AuthService {
	return NewAuthService(
		memory.NewUserRepository(),
		NewPasswordHasher(),
		NewTokenService("secret", 0),
		zerolog.Nop(),
	)
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newAuthService()

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "pass123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %s", user.Email)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "pass123" || user.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
}

func TestAuthService_Register_DuplicateEmailCaseInsensitive(t *testing.T) {
	svc := newAuthService()

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Bob", Email: "bob@example.com", Password: "pass123",
	}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Bobby", Email: "BOB@example.COM", Password: "other-pass",
	}); err != domain.ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newAuthService()

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Carol", Email: "carol@example.com", Password: "s3cret", Role: domain.RoleAdmin,
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "Carol@Example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token")
	}
	if result.ExpiresIn != "1h" {
		t.Fatalf("expected expiresIn 1h, got %s", result.ExpiresIn)
	}

	claims, err := svc.tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role claim, got %s", claims.Role)
	}
	if claims.Email != "carol@example.com" {
		t.Fatalf("unexpected email claim: %s", claims.Email)
	}
}

// Wrong password and unknown email must be indistinguishable.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	svc := newAuthService()

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Dave", Email: "dave@example.com", Password: "goodpass",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, noUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if noUser != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
	if wrongPass != noUser {
		t.Fatalf("failure modes must be identical")
	}
}

func TestAuthService_FindByID(t *testing.T) {
	svc := newAuthService()

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Eve", Email: "eve@example.com", Password: "pass123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	found, err := svc.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Email != "eve@example.com" {
		t.Fatalf("unexpected user: %+v", found)
	}

	if _, err := svc.FindByID(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
