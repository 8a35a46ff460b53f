// File: internal/dto/generate_response.go
package dto

// swagger:model dto.GenerateResponse
type GenerateResponse struct {
	Text string `json:"text" example:"hi there"`
}
