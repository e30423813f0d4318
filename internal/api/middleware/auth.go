package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mockshop/commerce-api/internal/core/ports"
	"github.com/mockshop/commerce-api/internal/pkg/httperr"
)

// Context keys under which verified claims are stored.
const (
	CtxSubject = "sub"
	CtxEmail   = "email"
	CtxRole    = "role"
)

// Auth requires an Authorization header of the exact form "Bearer <token>"
// and verifies the token. Absence or a malformed header yields AUTH_MISSING;
// a present token failing verification yields AUTH_INVALID. On success the
// claims are injected into the echo context.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return httperr.New(http.StatusUnauthorized, "AUTH_MISSING",
					"Missing or invalid Authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				return httperr.New(http.StatusUnauthorized, "AUTH_INVALID",
					"Invalid or expired token")
			}

			c.Set(CtxSubject, claims.SubjectID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
