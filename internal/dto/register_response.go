// File: internal/dto/register_response.go
package dto

// swagger:model dto.RegisterResponse
type RegisterResponse struct {
	ID int64 `json:"id" example:"1"`
}
