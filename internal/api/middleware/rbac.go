package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mockshop/commerce-api/internal/pkg/httperr"
)

// RequireRole enforces an exact-match role check against the claims injected
// by Auth. There is no role hierarchy. Auth must run first; an empty role
// means the request never passed authentication and is rejected too.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got, _ := c.Get(CtxRole).(string)
			if got != role {
				return httperr.New(http.StatusForbidden, "FORBIDDEN",
					"Insufficient permissions")
			}
			return next(c)
		}
	}
}
