package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trailatlas/trails-api/internal/core/domain"
	"github.com/trailatlas/trails-api/internal/core/ports"
)

// AccountHandler handles signup and signin.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=5"`
	Email    string `json:"email" validate:"required,email"`
}

type signinRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// signupResponse and signinResponse are the only payloads that ever carry
// the access token.
type signupResponse struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	AccessToken string `json:"accessToken"`
	Email       string `json:"email"`
}

type signinResponse struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	AccessToken string `json:"accessToken"`
}

// Signup creates a new account.
//
// @Summary      Create an account
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /signup [post]
func (h *AccountHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail(err.Error()))
	}

	user, err := h.accounts.Signup(c.Request().Context(), req.Username, req.Password, req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, fail(err.Error()))
	}

	return c.JSON(http.StatusCreated, ok(signupResponse{
		UserID:      user.ID,
		Username:    user.Username,
		AccessToken: user.AccessToken,
		Email:       user.Email,
	}))
}

// Signin verifies credentials and returns the account's access token.
//
// @Summary      Sign in
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      signinRequest  true  "Credentials"
// @Success      200   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /signin [post]
func (h *AccountHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, fail("invalid payload"))
	}

	user, err := h.accounts.Signin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusNotFound, fail(err.Error()))
		}
		return c.JSON(http.StatusBadRequest, fail(err.Error()))
	}

	return c.JSON(http.StatusOK, ok(signinResponse{
		UserID:      user.ID,
		Username:    user.Username,
		AccessToken: user.AccessToken,
	}))
}
