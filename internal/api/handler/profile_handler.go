package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trailatlas/trails-api/internal/core/ports"
)

// ProfileHandler serves the authenticated user's profile and favorites.
// Every route here sits behind the TokenAuth middleware.
type ProfileHandler struct {
	accounts ports.AccountService
}

func NewProfileHandler(accounts ports.AccountService) *ProfileHandler {
	return &ProfileHandler{accounts: accounts}
}

type updateProfileRequest struct {
	ProfilePicture string `json:"profilePicture"`
}

type favoriteRoute struct {
	ID   string         `json:"id"`
	Tags map[string]any `json:"tags"`
}

type favoriteRequest struct {
	Route favoriteRoute `json:"route"`
}

// Get returns the authenticated user.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ok(user))
}

// Update sets the profile picture.
//
// @Summary      Update profile picture
// @Tags         profile
// @Accept       json
// @Produce      json
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Router       /profile [post]
func (h *ProfileHandler) Update(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}

	updated, err := h.accounts.UpdateProfilePicture(c.Request().Context(), user, req.ProfilePicture)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail(err.Error()))
	}
	return c.JSON(http.StatusOK, ok(updated))
}

// AddFavorite appends a route to the user's favorites.
//
// @Summary      Add a favorite route
// @Tags         profile
// @Accept       json
// @Produce      json
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Router       /favorite [post]
func (h *ProfileHandler) AddFavorite(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}

	updated, err := h.accounts.AddFavorite(c.Request().Context(), user, req.Route.ID, req.Route.Tags)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail(err.Error()))
	}
	return c.JSON(http.StatusOK, ok(updated))
}

// RemoveFavorite removes every favorite matching the given route id.
//
// @Summary      Remove a favorite route
// @Tags         profile
// @Accept       json
// @Produce      json
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Router       /favorite [delete]
func (h *ProfileHandler) RemoveFavorite(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}

	updated, err := h.accounts.RemoveFavorite(c.Request().Context(), user, req.Route.ID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail(err.Error()))
	}
	return c.JSON(http.StatusOK, ok(updated))
}
