// File: internal/handler/generate.go
package handler

import (
	"errors"
	"net/http"

	"ai-hub/internal/dto"
	"ai-hub/internal/middleware"
	"ai-hub/internal/service"

	"github.com/labstack/echo/v4"
)

// GenerateHandler runs one AI generation for the authenticated user.
// @Summary     Generate content
// @Description Forward the prompt to the AI provider and record usage on success
// @Tags        generate
// @Accept      json
// @Produce     json
// @Param       body body dto.GenerateRequest true "generation payload"
// @Success     200 {object} dto.GenerateResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     401 {object} dto.HTTPError
// @Failure     403 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /generate [post]
func GenerateHandler(gen *service.GenerationService) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Message: "missing token"})
		}

		var req dto.GenerateRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: err.Error()})
		}

		text, err := gen.Generate(c.Request().Context(), claims.UserID, req.ToolType, req.Prompt, req.SystemInstruction)
		if err != nil {
			if errors.Is(err, service.ErrEmptyPrompt) {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "prompt is required"})
			}
			c.Logger().Errorf("generate: %v", err)
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Message: "failed to generate content"})
		}

		return c.JSON(http.StatusOK, dto.GenerateResponse{Text: text})
	}
}
