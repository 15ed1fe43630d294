package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trailatlas/trails-api/internal/core/domain"
	"github.com/trailatlas/trails-api/internal/core/ports"
)

// UserContextKey is the echo context key under which TokenAuth stores the
// authenticated user.
const UserContextKey = "user"

// TokenAuth resolves the Authorization header (the raw access token, no
// scheme prefix) to a user and injects it into the request context. An
// unknown or missing token ends the request with 401; a store failure with
// 400, so the two are distinguishable to clients.
func TokenAuth(auth ports.TokenAuthenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get("Authorization")

			user, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					return c.JSON(http.StatusUnauthorized, map[string]any{
						"response": "not authenticated",
						"success":  false,
					})
				}
				return c.JSON(http.StatusBadRequest, map[string]any{
					"response": err.Error(),
					"success":  false,
				})
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
