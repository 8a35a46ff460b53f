// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"ai-hub/internal/database"
	"ai-hub/internal/dto"

	"github.com/labstack/echo/v4"
)

// PingResponse is the health check response body.
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler reports service and database health.
// @Summary     Health Check
// @Description Return pong when the database connection is healthy
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /ping [get]
func PingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
