// File: internal/api/error_response.go
package api

// ErrorResponse is the error body every endpoint returns.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	// Detail is a human-readable description of the failure.
	Detail string `json:"detail" example:"room with ID 3 not found"`
}
