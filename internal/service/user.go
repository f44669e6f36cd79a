// Package service contains the business logic for user operations.
package service

import (
	"errors"
	"time"

	"github.com/userhub/userhub/internal/model"
)

// ErrMissingFields indicates a create request without a name or email.
var ErrMissingFields = errors.New("name and email are required")

// sampleUsers is the fixed listing returned by ListUsers.
// There is no store behind it; created users are never added here.
var sampleUsers = []model.User{
	{ID: 1, Name: "John Doe", Email: "john@example.com"},
	{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
}

// UserService implements user listing and creation.
type UserService struct {
	now func() time.Time
}

// NewUserService creates a new UserService.
func NewUserService() *UserService {
	return &UserService{
		now: time.Now,
	}
}

// ListUsers returns the sample user listing in fixed order.
func (s *UserService) ListUsers() []model.User {
	users := make([]model.User, len(sampleUsers))
	copy(users, sampleUsers)
	return users
}

// CreateUserInput holds the fields for creating a user.
type CreateUserInput struct {
	Name  string
	Email string
}

// CreateUser validates the input and synthesizes a user.
// The ID is the current epoch time in milliseconds, so concurrent
// creates within the same millisecond can collide.
func (s *UserService) CreateUser(input CreateUserInput) (*model.User, error) {
	if input.Name == "" || input.Email == "" {
		return nil, ErrMissingFields
	}

	return &model.User{
		ID:    s.now().UnixMilli(),
		Name:  input.Name,
		Email: input.Email,
	}, nil
}
