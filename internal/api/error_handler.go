package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mockshop/commerce-api/internal/core/domain"
	"github.com/mockshop/commerce-api/internal/pkg/httperr"
)

// errorEnvelope is the canonical JSON shape for every API error:
// {"error": {"code", "message", "details?"}}.
type errorEnvelope struct {
	Error *httperr.Error `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders httperr.Error values (auth, rbac, validation) as-is.
//   - Maps known domain errors to their status and code.
//   - Collapses router 404/405 into the uniform NOT_FOUND response.
//   - Logs anything unexpected and returns a generic 500 without leaking
//     internal detail.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		_ = c.JSON(resolve(err, log, c))
	}
}

func resolve(err error, log zerolog.Logger, c echo.Context) (int, errorEnvelope) {
	var apiErr *httperr.Error
	if errors.As(err, &apiErr) {
		return apiErr.Status, errorEnvelope{Error: apiErr}
	}

	var invalidProduct *domain.InvalidProductError
	switch {
	case errors.Is(err, domain.ErrEmailExists):
		return reply(http.StatusConflict, "EMAIL_EXISTS", "An account with this email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return reply(http.StatusBadRequest, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, domain.ErrUserNotFound):
		return reply(http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, domain.ErrProductNotFound):
		return reply(http.StatusNotFound, "NOT_FOUND", "Product not found")
	case errors.Is(err, domain.ErrTokenInvalid):
		return reply(http.StatusUnauthorized, "AUTH_INVALID", "Invalid or expired token")
	case errors.As(err, &invalidProduct):
		return reply(http.StatusBadRequest, "INVALID_PRODUCT", "Invalid productId: "+invalidProduct.ProductID)
	}

	// Router misses. 405 is folded into 404: the contract promises NOT_FOUND
	// for any unmatched route.
	var he *echo.HTTPError
	if errors.As(err, &he) && (he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed) {
		return reply(http.StatusNotFound, "NOT_FOUND", "Route not found")
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return reply(http.StatusInternalServerError, "INTERNAL", "Internal server error")
}

func reply(status int, code, message string) (int, errorEnvelope) {
	return status, errorEnvelope{Error: &httperr.Error{Status: status, Code: code, Message: message}}
}
