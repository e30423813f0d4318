package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mockshop/commerce-api/internal/core/domain"
	"github.com/mockshop/commerce-api/internal/core/service"
	"github.com/mockshop/commerce-api/internal/pkg/httperr"
)

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", 0)

	signed, err := tokens.Issue("user-1", "alice@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(tokens)(func(c echo.Context) error {
		called = true
		if c.Get(CtxSubject) != "user-1" {
			t.Fatalf("subject not set")
		}
		if c.Get(CtxEmail) != "alice@example.com" {
			t.Fatalf("email not set")
		}
		if c.Get(CtxRole) != domain.RoleAdmin {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingOrMalformedHeader(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", 0)

	signed, err := tokens.Issue("user-1", "a@b.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	headers := map[string]string{
		"absent":       "",
		"wrong scheme": "Token " + signed,
		"lower bearer": "bearer " + signed,
		"no token":     "Bearer ",
		"token only":   signed,
	}

	for name, header := range headers {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		c := e.NewContext(req, httptest.NewRecorder())

		handler := Auth(tokens)(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next", name)
			return nil
		})

		err := handler(c)
		var apiErr *httperr.Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("%s: expected httperr.Error, got %v", name, err)
		}
		if apiErr.Status != http.StatusUnauthorized || apiErr.Code != "AUTH_MISSING" {
			t.Fatalf("%s: expected 401 AUTH_MISSING, got %d %s", name, apiErr.Status, apiErr.Code)
		}
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	e := echo.New()
	tokens := service.NewTokenService("secret", 0)
	other := service.NewTokenService("other-secret", 0)

	foreign, err := other.Issue("user-1", "a@b.com", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	for _, token := range []string{"garbage", foreign} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		c := e.NewContext(req, httptest.NewRecorder())

		handler := Auth(tokens)(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})

		err := handler(c)
		var apiErr *httperr.Error
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected httperr.Error, got %v", err)
		}
		if apiErr.Status != http.StatusUnauthorized || apiErr.Code != "AUTH_INVALID" {
			t.Fatalf("expected 401 AUTH_INVALID, got %d %s", apiErr.Status, apiErr.Code)
		}
	}
}
