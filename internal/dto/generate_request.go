// File: internal/dto/generate_request.go
package dto

// Field names match the frontend payload (camelCase).
// swagger:model dto.GenerateRequest
type GenerateRequest struct {
	Prompt            string `json:"prompt" validate:"required" example:"Write a haiku about Go"`
	ToolType          string `json:"toolType" example:"chat"`
	SystemInstruction string `json:"systemInstruction,omitempty" example:"You are a helpful AI assistant."`
}
