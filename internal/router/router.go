// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"ai-hub/internal/cache"
	"ai-hub/internal/database"
	"ai-hub/internal/handler"
	"ai-hub/internal/handler/auth"
	"ai-hub/internal/handler/users"
	"ai-hub/internal/middleware"
	"ai-hub/internal/service"
)

// Setup registers all routes. Everything except registration and login sits
// behind the bearer-token middleware.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, tokens *service.TokenService, gen *service.GenerationService) {
	api := e.Group("/api")
	requireAuth := middleware.RequireAuth(tokens)

	api.GET("/ping", handler.PingHandler(db), requireAuth)

	api.POST("/auth/register", auth.RegisterHandler(db))
	api.POST("/auth/login", auth.LoginHandler(db, tokens))

	api.POST("/generate", handler.GenerateHandler(gen), requireAuth)

	apiUser := api.Group("/user", requireAuth)
	apiUser.GET("/profile", users.ProfileHandler(db, rdb))
	apiUser.GET("/history", users.HistoryHandler(db))
}
