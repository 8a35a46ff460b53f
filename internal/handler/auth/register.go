// File: internal/handler/auth/register.go
package auth

import (
	"errors"
	"net/http"

	"ai-hub/internal/database"
	"ai-hub/internal/dto"
	"ai-hub/internal/service"
	"ai-hub/internal/store"

	"github.com/labstack/echo/v4"
)

// RegisterHandler creates a new user account.
// @Summary     Register a new user
// @Description Create an account with email and password, starting at zero usage
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.RegisterRequest true "registration payload"
// @Success     201 {object} dto.RegisterResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			c.Logger().Errorf("hash password: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "registration failed"})
		}

		user, err := store.CreateUser(c.Request().Context(), db, req.Email, hash)
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "email already exists"})
			}
			c.Logger().Errorf("create user: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "registration failed"})
		}

		return c.JSON(http.StatusCreated, dto.RegisterResponse{ID: user.ID})
	}
}
