package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/cardstudio/internal/apperror"
)

// RequireOperatorToken returns middleware that admits only requests with
// "Authorization: Bearer <token>". An empty token rejects every request.
func RequireOperatorToken(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return apperror.NewUnauthorized("operator token required")
			}

			presented, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				return apperror.NewUnauthorized("invalid authorization format, use: Bearer <token>")
			}
			if token == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				return apperror.NewForbidden("invalid operator token")
			}
			return next(c)
		}
	}
}
