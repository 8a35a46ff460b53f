// File: internal/handler/users/profile.go
package users

import (
	"encoding/json"
	"net/http"

	"ai-hub/internal/cache"
	"ai-hub/internal/database"
	"ai-hub/internal/dto"
	"ai-hub/internal/middleware"
	"ai-hub/internal/service"
	"ai-hub/internal/store"

	"github.com/labstack/echo/v4"
)

// ProfileHandler returns the authenticated user's profile. Responses are
// cached briefly in Redis; the ledger drops the entry whenever it records a
// generation, so usage_count never lags by more than the TTL.
// @Summary     Get current user profile
// @Description Return id, email and usage count for the token's user
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.UserResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /user/profile [get]
func ProfileHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "missing token"})
		}
		ctx := c.Request().Context()
		key := service.ProfileCacheKey(claims.UserID)

		if rdb != nil {
			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cached dto.UserResponse
				if err := json.Unmarshal(raw, &cached); err == nil {
					return c.JSON(http.StatusOK, cached)
				}
			}
		}

		user, err := store.GetUserByID(ctx, db, claims.UserID)
		if err != nil {
			c.Logger().Errorf("get user: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to load profile"})
		}

		resp := dto.UserResponse{
			ID:         user.ID,
			Email:      user.Email,
			UsageCount: user.UsageCount,
		}
		if rdb != nil {
			if raw, err := json.Marshal(resp); err == nil {
				_ = rdb.Set(ctx, key, raw, service.ProfileCacheTTL).Err()
			}
		}
		return c.JSON(http.StatusOK, resp)
	}
}
