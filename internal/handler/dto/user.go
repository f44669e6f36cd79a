// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ErrorResponse is the uniform shape of every error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
