// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"ai-hub/internal/database"
	"ai-hub/internal/dto"
	"ai-hub/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginHandler verifies credentials and returns a bearer token.
// @Summary     Log in
// @Description Verify email and password, returning an access token and the user profile
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body dto.LoginRequest true "login payload"
// @Success     200 {object} dto.LoginResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler(db database.DB, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		user, err := service.Authenticate(c.Request().Context(), db, req.Email, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "invalid credentials"})
		}

		token, err := tokens.Issue(*user)
		if err != nil {
			c.Logger().Errorf("issue token: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, dto.LoginResponse{
			Token: token,
			User: dto.UserResponse{
				ID:         user.ID,
				Email:      user.Email,
				UsageCount: user.UsageCount,
			},
		})
	}
}
