package middleware

import (
	"errors"
	"net/http"
	"strings"

	"ai-hub/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// extractClaims pulls the bearer token from the Authorization header and
// verifies it. A missing or malformed header is 401; a token that is
// present but invalid or expired is 403.
func extractClaims(c echo.Context, tokens *service.TokenService) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := tokens.Verify(parts[1])
	if err != nil {
		if errors.Is(err, service.ErrTokenExpired) {
			return nil, echo.NewHTTPError(http.StatusForbidden, "token expired")
		}
		return nil, echo.NewHTTPError(http.StatusForbidden, "invalid token")
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid bearer token and stores the
// verified claims in the echo context.
func RequireAuth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, tokens)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// ClaimsFromContext returns the claims RequireAuth stored, or nil.
func ClaimsFromContext(c echo.Context) *service.Claims {
	claims, _ := c.Get(ContextUserKey).(*service.Claims)
	return claims
}
