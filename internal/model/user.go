// Package model defines domain entities for the application.
package model

// User represents a user in API responses.
// Users are fabricated per-request; nothing is persisted.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
