// File: internal/dto/http_error.go
package dto

// HTTPError is the error response body for every failing endpoint.
// swagger:model dto.HTTPError
type HTTPError struct {
	Message string `json:"message"`
}
