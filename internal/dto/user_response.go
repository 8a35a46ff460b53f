// File: internal/dto/user_response.go
package dto

// swagger:model dto.UserResponse
type UserResponse struct {
	ID         int64  `json:"id" example:"1"`
	Email      string `json:"email" example:"alice@example.com"`
	UsageCount int64  `json:"usage_count" example:"3"`
}
