package dto

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// RegisterRequest payload for customer self-registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company"`
}

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse carries the issued token and the account it belongs to.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse is the public account view. The password hash never leaves the
// service layer.
type UserResponse struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Company   string      `json:"company"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}

// UpdateProfileRequest is a partial self-service profile update.
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Company  *string `json:"company"`
	Password *string `json:"password"`
}

// CreateUserRequest is an admin-driven account creation payload.
type CreateUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
	Company  string      `json:"company"`
}

// UpdateUserRequest is an admin-driven partial account update.
type UpdateUserRequest struct {
	Name    *string      `json:"name"`
	Role    *domain.Role `json:"role"`
	Company *string      `json:"company"`
	Active  *bool        `json:"active"`
}
