package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trailatlas/trails-api/internal/api/middleware"
	"github.com/trailatlas/trails-api/internal/core/domain"
)

// ctxUser extracts the user injected by the TokenAuth middleware. A missing
// user means the route was registered without the middleware; fail closed
// with 401 rather than proceeding unauthenticated.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, okCast := c.Get(middleware.UserContextKey).(*domain.User)
	if !okCast || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return user, nil
}
