// File: internal/handler/users/history.go
package users

import (
	"net/http"
	"strconv"

	"ai-hub/internal/database"
	"ai-hub/internal/dto"
	"ai-hub/internal/middleware"
	"ai-hub/internal/store"

	"github.com/labstack/echo/v4"
)

// maxHistoryLimit caps how many records one request may fetch.
const maxHistoryLimit = 50

// HistoryHandler lists the authenticated user's generation history, newest
// first.
// @Summary     Get generation history
// @Description Return up to 50 most recent generation records for the token's user
// @Tags        users
// @Produce     json
// @Param       limit query int false "maximum records to return (1-50, default 50)"
// @Success     200 {array} model.HistoryRecord
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /user/history [get]
func HistoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "missing token"})
		}

		limit := maxHistoryLimit
		if raw := c.QueryParam("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid limit"})
			}
			if n < limit {
				limit = n
			}
		}

		records, err := store.ListHistory(c.Request().Context(), db, claims.UserID, limit)
		if err != nil {
			c.Logger().Errorf("list history: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to load history"})
		}
		return c.JSON(http.StatusOK, records)
	}
}
