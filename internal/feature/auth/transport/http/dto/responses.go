package dto

import (
	"time"

	"taskplanner_backend/internal/feature/auth/domain/entity"
)

// UserPayload is the outward representation of a user. The password hash is
// deliberately absent.
type UserPayload struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserPayload converts a user entity into its outward representation.
func NewUserPayload(u *entity.User) UserPayload {
	return UserPayload{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// AuthResponse is the success envelope for signup and login.
type AuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
	Token   string      `json:"token"`
}

// UserResponse is the success envelope for update and user lookup.
type UserResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	User    UserPayload `json:"user"`
}
